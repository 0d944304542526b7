package handler

import (
	"net/http"

	"github.com/startbeyond/startbeyond/internal/ctxkeys"
	"github.com/startbeyond/startbeyond/internal/service"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

type updateProfileRequest struct {
	Name     string `json:"name" validate:"required"`
	Timezone string `json:"timezone"`
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req updateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.profileService.Update(user.ID, req.Name, req.Timezone)
	if err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID)
		return
	}

	profile, err := h.profileService.ByUserID(user.ID)
	if err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID)
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{Name: profile.Name, Timezone: profile.Timezone})
}
