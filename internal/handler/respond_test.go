package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/startbeyond/startbeyond/internal/repository"
	"github.com/startbeyond/startbeyond/internal/service"
	"github.com/startbeyond/startbeyond/internal/validation"
)

type sampleRequest struct {
	Title string `json:"title" validate:"required"`
	Count int    `json:"count" validate:"min=0"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantOK     bool
		wantStatus int
		wantField  string
	}{
		{"valid body", `{"title":"hello","count":3}`, true, 0, ""},
		{"malformed json", `{"title":`, false, http.StatusBadRequest, ""},
		{"missing required field", `{"count":3}`, false, http.StatusUnprocessableEntity, "Title"},
		{"constraint violation", `{"title":"hello","count":-1}`, false, http.StatusUnprocessableEntity, "Count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var dst sampleRequest
			ok := decodeJSON(w, r, &dst)
			if ok != tt.wantOK {
				t.Fatalf("decodeJSON = %v, want %v", ok, tt.wantOK)
			}
			if ok {
				return
			}

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantField != "" {
				var body errorBody
				if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
					t.Fatalf("decoding error body: %v", err)
				}
				if body.Field != tt.wantField {
					t.Errorf("field = %q, want %q", body.Field, tt.wantField)
				}
			}
		})
	}
}

func TestRespondServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"field error", validation.Error("title", "title is required"), http.StatusUnprocessableEntity},
		{"unknown category", service.ErrUnknownCategory, http.StatusUnprocessableEntity},
		{"locked task", service.ErrTaskLocked, http.StatusUnprocessableEntity},
		{"plan already completed", service.ErrPlanAlreadyCompleted, http.StatusUnprocessableEntity},
		{"goal not found", repository.ErrMonthlyGoalNotFound, http.StatusNotFound},
		{"wrapped not found", errors.Join(errors.New("context"), repository.ErrDailyPlanNotFound), http.StatusNotFound},
		{"memo not found", repository.ErrMemoNotFound, http.StatusNotFound},
		{"unexpected error", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			respondServiceError(w, tt.err, "error", tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var body errorBody
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("decoding error body: %v", err)
			}
			if body.Error == "" {
				t.Error("error body missing message")
			}
			// Storage details must not leak on unexpected failures.
			if tt.wantStatus == http.StatusInternalServerError && strings.Contains(body.Error, "disk") {
				t.Errorf("leaked internal error: %q", body.Error)
			}
		})
	}
}

func TestWriteFieldError(t *testing.T) {
	w := httptest.NewRecorder()
	writeFieldError(w, "month must be formatted as 2006-01", "month")

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d", w.Code)
	}
	var body errorBody
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if body.Field != "month" {
		t.Errorf("field = %q", body.Field)
	}
}
