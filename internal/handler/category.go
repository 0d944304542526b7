package handler

import (
	"net/http"

	"github.com/startbeyond/startbeyond/internal/ctxkeys"
	"github.com/startbeyond/startbeyond/internal/service"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
}

func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// List returns the full merged category list; pass ?active=true for the
// filtered, ordered view the planner pages use.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	if r.URL.Query().Get("active") == "true" {
		categories, err := h.categoryService.Active(user.ID)
		if err != nil {
			respondServiceError(w, err, "error", err, "user_id", user.ID)
			return
		}
		writeJSON(w, http.StatusOK, categories)
		return
	}

	categories, err := h.categoryService.Resolved(user.ID)
	if err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

type upsertCategoryRequest struct {
	Label       string  `json:"label" validate:"required"`
	Icon        string  `json:"icon"`
	Color       *string `json:"color"`
	HasDuration bool    `json:"has_duration"`
	IsActive    *bool   `json:"is_active"`
	SortOrder   *int    `json:"sort_order"`
}

func (h *CategoryHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	code := r.PathValue("code")

	var req upsertCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	category, err := h.categoryService.UpsertOverride(user.ID, code, req.Label, req.Icon, req.Color, req.HasDuration, isActive, req.SortOrder)
	if err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID, "code", code)
		return
	}

	writeJSON(w, http.StatusOK, category)
}

type setActiveRequest struct {
	IsActive bool `json:"is_active"`
}

func (h *CategoryHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	code := r.PathValue("code")

	var req setActiveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.categoryService.SetActive(user.ID, code, req.IsActive)
	if err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID, "code", code)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type reorderRequest struct {
	Codes []string `json:"codes" validate:"required,min=1"`
}

func (h *CategoryHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req reorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.categoryService.Reorder(user.ID, req.Codes)
	if err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID)
		return
	}

	categories, err := h.categoryService.Active(user.ID)
	if err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}
