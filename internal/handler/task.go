package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/startbeyond/startbeyond/internal/ctxkeys"
	"github.com/startbeyond/startbeyond/internal/model"
	"github.com/startbeyond/startbeyond/internal/period"
	"github.com/startbeyond/startbeyond/internal/service"
)

type TaskHandler struct {
	taskService *service.TaskService
}

func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	week, err := period.ParseWeek(r.URL.Query().Get("week"))
	if err != nil {
		writeFieldError(w, "week must be formatted as 2006-01-02", "week")
		return
	}

	tasks, err := h.taskService.Tasks(user.ID, week)
	if err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID)
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

type createTaskRequest struct {
	Week              string  `json:"week" validate:"required"`
	CategoryCode      string  `json:"category_code" validate:"required"`
	Subcode           *string `json:"subcode"`
	Comment           string  `json:"comment"`
	Days              []int   `json:"days" validate:"dive,min=0,max=6"`
	FromMonthlyGoalID *string `json:"from_monthly_goal_id"`
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req createTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	week, err := period.ParseWeek(req.Week)
	if err != nil {
		writeFieldError(w, "week must be formatted as 2006-01-02", "week")
		return
	}

	days := model.WeekdaySet{}
	for _, d := range req.Days {
		days[time.Weekday(d)] = true
	}

	task, err := h.taskService.Create(user.ID, week, req.CategoryCode, req.Subcode, req.Comment, days, req.FromMonthlyGoalID)
	if err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID)
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

type updateTaskRequest struct {
	CategoryCode string  `json:"category_code" validate:"required"`
	Subcode      *string `json:"subcode"`
	Comment      string  `json:"comment"`
	SortOrder    int     `json:"sort_order"`
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	taskID := r.PathValue("id")

	var req updateTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	task, err := h.taskService.Update(user.ID, taskID, req.CategoryCode, req.Subcode, req.Comment, req.SortOrder)
	if err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID, "task_id", taskID)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) ToggleDay(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	taskID := r.PathValue("id")

	weekday, err := strconv.Atoi(r.PathValue("weekday"))
	if err != nil || weekday < 0 || weekday > 6 {
		writeFieldError(w, "weekday must be between 0 and 6", "weekday")
		return
	}

	task, err := h.taskService.ToggleDay(user.ID, taskID, time.Weekday(weekday))
	if err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID, "task_id", taskID)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

type setLockedRequest struct {
	IsLocked bool `json:"is_locked"`
}

func (h *TaskHandler) SetLocked(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	taskID := r.PathValue("id")

	var req setLockedRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	task, err := h.taskService.SetLocked(user.ID, taskID, req.IsLocked)
	if err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID, "task_id", taskID)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	taskID := r.PathValue("id")

	if err := h.taskService.Delete(user.ID, taskID); err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID, "task_id", taskID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
