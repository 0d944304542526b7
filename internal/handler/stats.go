package handler

import (
	"net/http"
	"time"

	"github.com/startbeyond/startbeyond/internal/ctxkeys"
	"github.com/startbeyond/startbeyond/internal/period"
	"github.com/startbeyond/startbeyond/internal/service"
)

type StatsHandler struct {
	statsService      *service.StatsService
	completionService *service.CompletionService
}

func NewStatsHandler(statsService *service.StatsService, completionService *service.CompletionService) *StatsHandler {
	return &StatsHandler{
		statsService:      statsService,
		completionService: completionService,
	}
}

// parseRange reads start/end query params and returns the inclusive range.
// end defaults to start when omitted.
func parseRange(w http.ResponseWriter, r *http.Request) (start, end time.Time, ok bool) {
	var err error
	start, err = period.ParseDay(r.URL.Query().Get("start"))
	if err != nil {
		writeFieldError(w, "start must be formatted as 2006-01-02", "start")
		return
	}

	endParam := r.URL.Query().Get("end")
	if endParam == "" {
		return start, start, true
	}

	end, err = period.ParseDay(endParam)
	if err != nil {
		writeFieldError(w, "end must be formatted as 2006-01-02", "end")
		return
	}
	if end.Before(start) {
		writeFieldError(w, "end must not be before start", "end")
		return
	}

	return start, end, true
}

func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	start, end, ok := parseRange(w, r)
	if !ok {
		return
	}

	stats, err := h.statsService.Stats(user.ID, start, end)
	if err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *StatsHandler) Completion(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	start, end, ok := parseRange(w, r)
	if !ok {
		return
	}

	summary, err := h.completionService.Summary(user.ID, start, end)
	if err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
