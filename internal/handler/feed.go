package handler

import (
	"net/http"

	"github.com/startbeyond/startbeyond/internal/period"
	"github.com/startbeyond/startbeyond/internal/service"
)

type FeedHandler struct {
	recordService *service.RecordService
}

func NewFeedHandler(recordService *service.RecordService) *FeedHandler {
	return &FeedHandler{
		recordService: recordService,
	}
}

func (h *FeedHandler) List(w http.ResponseWriter, r *http.Request) {
	date, err := period.ParseDay(r.URL.Query().Get("date"))
	if err != nil {
		writeFieldError(w, "date must be formatted as 2006-01-02", "date")
		return
	}

	items, err := h.recordService.Feed(date)
	if err != nil {
		respondServiceError(w, err, "error", err, "date", date.Format(period.DayFormat))
		return
	}

	if items == nil {
		items = []service.FeedItem{}
	}

	writeJSON(w, http.StatusOK, items)
}
