package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/startbeyond/startbeyond/internal/repository"
	"github.com/startbeyond/startbeyond/internal/service"
	"github.com/startbeyond/startbeyond/internal/validation"
)

// validate checks request DTO shape via `validate:` struct tags.
var validate = validator.New()

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Error: message})
}

// writeFieldError reports a malformed query or path parameter.
func writeFieldError(w http.ResponseWriter, message, field string) {
	writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: message, Field: field})
}

// decodeJSON parses and validates the request body into dst. It writes the
// error response itself and reports whether decoding succeeded.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}

	err = validate.Struct(dst)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			writeJSON(w, http.StatusUnprocessableEntity, errorBody{
				Error: "invalid value for " + verrs[0].Field(),
				Field: verrs[0].Field(),
			})
			return false
		}
		writeError(w, http.StatusUnprocessableEntity, "invalid request")
		return false
	}

	return true
}

// respondServiceError maps domain errors onto status codes. Unknown errors
// are logged and reported generically so storage details never leak.
func respondServiceError(w http.ResponseWriter, err error, logAttrs ...any) {
	var fieldErr *validation.FieldError
	if errors.As(err, &fieldErr) {
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: fieldErr.Message, Field: fieldErr.Field})
		return
	}

	switch {
	case errors.Is(err, service.ErrUnknownCategory),
		errors.Is(err, service.ErrTaskLocked),
		errors.Is(err, service.ErrPlanAlreadyCompleted):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, repository.ErrMonthlyGoalNotFound),
		errors.Is(err, repository.ErrWeeklyTaskNotFound),
		errors.Is(err, repository.ErrDailyPlanNotFound),
		errors.Is(err, repository.ErrDailyRecordNotFound),
		errors.Is(err, repository.ErrDailyNoteNotFound),
		errors.Is(err, repository.ErrMemoNotFound),
		errors.Is(err, repository.ErrCategoryNotFound),
		errors.Is(err, repository.ErrProfileNotFound),
		errors.Is(err, repository.ErrNotificationNotFound),
		errors.Is(err, service.ErrCriterionNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		slog.Error("request failed", logAttrs...)
		writeError(w, http.StatusInternalServerError, "something went wrong")
	}
}
