package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/startbeyond/startbeyond/internal/ctxkeys"
	"github.com/startbeyond/startbeyond/internal/model"
	"github.com/startbeyond/startbeyond/internal/service"
)

type ExportHandler struct {
	goalService   *service.GoalService
	taskService   *service.TaskService
	planService   *service.PlanService
	recordService *service.RecordService
}

func NewExportHandler(goalService *service.GoalService, taskService *service.TaskService, planService *service.PlanService, recordService *service.RecordService) *ExportHandler {
	return &ExportHandler{
		goalService:   goalService,
		taskService:   taskService,
		planService:   planService,
		recordService: recordService,
	}
}

type exportPayload struct {
	Year       int                  `json:"year"`
	ExportedAt time.Time            `json:"exported_at"`
	Goals      []*model.MonthlyGoal `json:"goals"`
	Tasks      []*model.WeeklyTask  `json:"tasks"`
	Plans      []*model.DailyPlan   `json:"plans"`
	Records    []*model.DailyRecord `json:"records"`
}

// Export streams a year of the user's planner data as a JSON attachment.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2200 {
		writeFieldError(w, "year must be a four digit year", "year")
		return
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	payload := exportPayload{
		Year:       year,
		ExportedAt: time.Now().UTC(),
	}

	if payload.Goals, err = h.goalService.ByPeriod(user.ID, start, end); err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID)
		return
	}
	if payload.Tasks, err = h.taskService.ByPeriod(user.ID, start, end); err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID)
		return
	}
	if payload.Plans, err = h.planService.Plans(user.ID, start, end); err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID)
		return
	}
	if payload.Records, err = h.recordService.Records(user.ID, start, end); err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID)
		return
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		slog.Error("marshaling export", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=startbeyond-%d.json", year))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
