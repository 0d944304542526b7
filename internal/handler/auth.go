package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/startbeyond/startbeyond/internal/ctxkeys"
	"github.com/startbeyond/startbeyond/internal/service"
	"github.com/startbeyond/startbeyond/internal/validation"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Timezone string `json:"timezone"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.authService.Register(req.Email, req.Password, req.Name, req.Timezone)
	if err != nil {
		var fieldErr *validation.FieldError
		if errors.As(err, &fieldErr) {
			writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: fieldErr.Message, Field: fieldErr.Field})
			return
		}
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			writeError(w, http.StatusConflict, "an account with this email already exists")
			return
		}
		slog.Error("failed to register user", "error", err)
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Warn("failed to generate token after signup", "error", err, "user_id", user.ID)
	} else {
		h.authService.SetJWTCookie(w, token, time.Now().Add(h.authService.JWTExpiry()))
	}

	writeJSON(w, http.StatusCreated, userResponse{ID: user.ID, Email: user.Email})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		slog.Error("failed to log in user", "error", err)
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}
	h.authService.SetJWTCookie(w, token, time.Now().Add(h.authService.JWTExpiry()))

	writeJSON(w, http.StatusOK, userResponse{ID: user.ID, Email: user.Email})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearJWTCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

type meResponse struct {
	User    userResponse    `json:"user"`
	Profile profileResponse `json:"profile"`
}

type profileResponse struct {
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	profile := ctxkeys.Profile(r.Context())

	resp := meResponse{
		User: userResponse{ID: user.ID, Email: user.Email},
	}
	if profile != nil {
		resp.Profile = profileResponse{Name: profile.Name, Timezone: profile.Timezone}
	}

	writeJSON(w, http.StatusOK, resp)
}
