package handler

import (
	"net/http"

	"github.com/startbeyond/startbeyond/internal/ctxkeys"
	"github.com/startbeyond/startbeyond/internal/model"
	"github.com/startbeyond/startbeyond/internal/period"
	"github.com/startbeyond/startbeyond/internal/service"
)

// DayHandler serves the combined day view and the per-day note.
type DayHandler struct {
	planService   *service.PlanService
	recordService *service.RecordService
	noteService   *service.NoteService
}

func NewDayHandler(planService *service.PlanService, recordService *service.RecordService, noteService *service.NoteService) *DayHandler {
	return &DayHandler{
		planService:   planService,
		recordService: recordService,
		noteService:   noteService,
	}
}

type dayResponse struct {
	Date    string               `json:"date"`
	Plans   []*model.DailyPlan   `json:"plans"`
	Records []*model.DailyRecord `json:"records"`
	Note    *model.DailyNote     `json:"note"`
}

func (h *DayHandler) Show(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	date, err := period.ParseDay(r.PathValue("date"))
	if err != nil {
		writeFieldError(w, "date must be formatted as 2006-01-02", "date")
		return
	}

	plans, err := h.planService.Plans(user.ID, date, date)
	if err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID)
		return
	}

	records, err := h.recordService.Records(user.ID, date, date)
	if err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID)
		return
	}

	note, err := h.noteService.Note(user.ID, date)
	if err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID)
		return
	}

	if plans == nil {
		plans = []*model.DailyPlan{}
	}
	if records == nil {
		records = []*model.DailyRecord{}
	}

	writeJSON(w, http.StatusOK, dayResponse{
		Date:    date.Format(period.DayFormat),
		Plans:   plans,
		Records: records,
		Note:    note,
	})
}

type setNoteRequest struct {
	Content string `json:"content"`
}

func (h *DayHandler) SetNote(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	date, err := period.ParseDay(r.PathValue("date"))
	if err != nil {
		writeFieldError(w, "date must be formatted as 2006-01-02", "date")
		return
	}

	var req setNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	note, err := h.noteService.SetNote(user.ID, date, req.Content)
	if err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID)
		return
	}

	if note == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, note)
}
