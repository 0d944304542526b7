package handler

import (
	"net/http"
	"strconv"

	"github.com/startbeyond/startbeyond/internal/ctxkeys"
	"github.com/startbeyond/startbeyond/internal/service"
)

type NotificationHandler struct {
	notificationService *service.NotificationService
}

func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeFieldError(w, "limit must be a positive integer", "limit")
			return
		}
		limit = n
	}

	notifications, err := h.notificationService.Notifications(user.ID, limit)
	if err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID)
		return
	}

	writeJSON(w, http.StatusOK, notifications)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	notificationID := r.PathValue("id")

	if err := h.notificationService.MarkRead(user.ID, notificationID); err != nil {
		respondServiceError(w, err, "error", err, "user_id", user.ID, "notification_id", notificationID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
