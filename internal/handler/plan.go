package handler

import (
	"net/http"

	"github.com/startbeyond/startbeyond/internal/ctxkeys"
	"github.com/startbeyond/startbeyond/internal/period"
	"github.com/startbeyond/startbeyond/internal/service"
)

type PlanHandler struct {
	planService *service.PlanService
}

func NewPlanHandler(planService *service.PlanService) *PlanHandler {
	return &PlanHandler{
		planService: planService,
	}
}

type createPlanRequest struct {
	Date             string  `json:"date" validate:"required"`
	CategoryCode     string  `json:"category_code" validate:"required"`
	Subcode          *string `json:"subcode"`
	DurationMinutes  *int    `json:"duration_minutes" validate:"omitempty,min=0"`
	Comment          string  `json:"comment"`
	FromWeeklyTaskID *string `json:"from_weekly_task_id"`
}

func (h *PlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req createPlanRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	date, err := period.ParseDay(req.Date)
	if err != nil {
		writeFieldError(w, "date must be formatted as 2006-01-02", "date")
		return
	}

	plan, err := h.planService.Create(user.ID, date, req.CategoryCode, req.Subcode, req.DurationMinutes, req.Comment, req.FromWeeklyTaskID)
	if err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID)
		return
	}

	writeJSON(w, http.StatusCreated, plan)
}

type updatePlanRequest struct {
	CategoryCode    string  `json:"category_code" validate:"required"`
	Subcode         *string `json:"subcode"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,min=0"`
	Comment         string  `json:"comment"`
}

func (h *PlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	planID := r.PathValue("id")

	var req updatePlanRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	plan, err := h.planService.Update(user.ID, planID, req.CategoryCode, req.Subcode, req.DurationMinutes, req.Comment)
	if err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID, "plan_id", planID)
		return
	}

	writeJSON(w, http.StatusOK, plan)
}

type completePlanRequest struct {
	DurationMinutes *int   `json:"duration_minutes" validate:"omitempty,min=0"`
	Comment         string `json:"comment"`
	IsPublic        bool   `json:"is_public"`
}

func (h *PlanHandler) Complete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	planID := r.PathValue("id")

	var req completePlanRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	record, err := h.planService.Complete(user.ID, planID, req.DurationMinutes, req.Comment, req.IsPublic)
	if err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID, "plan_id", planID)
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

func (h *PlanHandler) Materialize(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	week, err := period.ParseWeek(r.URL.Query().Get("week"))
	if err != nil {
		writeFieldError(w, "week must be formatted as 2006-01-02", "week")
		return
	}

	plans, err := h.planService.MaterializeWeek(user.ID, week)
	if err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID)
		return
	}

	writeJSON(w, http.StatusCreated, plans)
}

func (h *PlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	planID := r.PathValue("id")

	if err := h.planService.Delete(user.ID, planID); err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID, "plan_id", planID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
