package handler

import (
	"net/http"

	"github.com/startbeyond/startbeyond/internal/ctxkeys"
	"github.com/startbeyond/startbeyond/internal/model"
	"github.com/startbeyond/startbeyond/internal/period"
	"github.com/startbeyond/startbeyond/internal/service"
)

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	month, err := period.ParseMonth(r.URL.Query().Get("month"))
	if err != nil {
		writeFieldError(w, "month must be formatted as 2006-01", "month")
		return
	}

	goals, err := h.goalService.Goals(user.ID, month)
	if err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID)
		return
	}

	writeJSON(w, http.StatusOK, goals)
}

type createGoalRequest struct {
	Month        string            `json:"month" validate:"required"`
	CategoryCode string            `json:"category_code" validate:"required"`
	Title        string            `json:"title" validate:"required,max=200"`
	Description  string            `json:"description"`
	Criteria     []string          `json:"criteria"`
	Breakdown    model.WeekTextMap `json:"breakdown"`
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req createGoalRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	month, err := period.ParseMonth(req.Month)
	if err != nil {
		writeFieldError(w, "month must be formatted as 2006-01", "month")
		return
	}

	goal, err := h.goalService.Create(user.ID, month, req.CategoryCode, req.Title, req.Description, req.Criteria, req.Breakdown)
	if err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID)
		return
	}

	writeJSON(w, http.StatusCreated, goal)
}

type updateGoalRequest struct {
	CategoryCode string             `json:"category_code" validate:"required"`
	Title        string             `json:"title" validate:"required,max=200"`
	Description  string             `json:"description"`
	Criteria     model.CriteriaList `json:"criteria"`
	Breakdown    model.WeekTextMap  `json:"breakdown"`
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	var req updateGoalRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	goal, err := h.goalService.Update(user.ID, goalID, req.CategoryCode, req.Title, req.Description, req.Criteria, req.Breakdown)
	if err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID, "goal_id", goalID)
		return
	}

	writeJSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) ToggleCriterion(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")
	criterionID := r.PathValue("criterionID")

	goal, err := h.goalService.ToggleCriterion(user.ID, goalID, criterionID)
	if err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID, "goal_id", goalID, "criterion_id", criterionID)
		return
	}

	writeJSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	if err := h.goalService.Delete(user.ID, goalID); err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID, "goal_id", goalID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
