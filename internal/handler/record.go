package handler

import (
	"net/http"

	"github.com/startbeyond/startbeyond/internal/ctxkeys"
	"github.com/startbeyond/startbeyond/internal/period"
	"github.com/startbeyond/startbeyond/internal/service"
)

type RecordHandler struct {
	recordService *service.RecordService
}

func NewRecordHandler(recordService *service.RecordService) *RecordHandler {
	return &RecordHandler{
		recordService: recordService,
	}
}

type createRecordRequest struct {
	Date            string  `json:"date" validate:"required"`
	CategoryCode    string  `json:"category_code" validate:"required"`
	Subcode         *string `json:"subcode"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,min=0"`
	Comment         string  `json:"comment"`
	IsPublic        bool    `json:"is_public"`
	LinkedPlanID    *string `json:"linked_plan_id"`
}

func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req createRecordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	date, err := period.ParseDay(req.Date)
	if err != nil {
		writeFieldError(w, "date must be formatted as 2006-01-02", "date")
		return
	}

	record, err := h.recordService.Create(user.ID, date, req.CategoryCode, req.Subcode, req.DurationMinutes, req.Comment, req.IsPublic, req.LinkedPlanID)
	if err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID)
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

type updateRecordRequest struct {
	CategoryCode    string  `json:"category_code" validate:"required"`
	Subcode         *string `json:"subcode"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,min=0"`
	Comment         string  `json:"comment"`
	IsPublic        bool    `json:"is_public"`
}

func (h *RecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	recordID := r.PathValue("id")

	var req updateRecordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	record, err := h.recordService.Update(user.ID, recordID, req.CategoryCode, req.Subcode, req.DurationMinutes, req.Comment, req.IsPublic)
	if err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID, "record_id", recordID)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	recordID := r.PathValue("id")

	if err := h.recordService.Delete(user.ID, recordID); err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID, "record_id", recordID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type addMemoRequest struct {
	Content string `json:"content" validate:"required"`
}

func (h *RecordHandler) AddMemo(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	recordID := r.PathValue("id")

	var req addMemoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	memo, err := h.recordService.AddMemo(user.ID, recordID, req.Content)
	if err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID, "record_id", recordID)
		return
	}

	writeJSON(w, http.StatusCreated, memo)
}

func (h *RecordHandler) DeleteMemo(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	recordID := r.PathValue("id")
	memoID := r.PathValue("memoID")

	if err := h.recordService.DeleteMemo(user.ID, recordID, memoID); err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID, "record_id", recordID, "memo_id", memoID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
