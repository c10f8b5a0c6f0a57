package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"itemvault/internal/handler/http/respond"
)

func body(t *testing.T, rr *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var m map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&m); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return m
}

func TestJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	respond.JSON(rr, http.StatusCreated, map[string]string{"message": "ok"})

	if rr.Code != http.StatusCreated {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusCreated)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q", ct)
	}
	if got := body(t, rr)["message"]; got != "ok" {
		t.Fatalf("message = %q, want ok", got)
	}
}

func TestSafeError_PassesValidationMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"required", errors.New("email is required")},
		{"not found", errors.New("user not found")},
		{"already exists", errors.New("user with this email already exists")},
		{"must be", errors.New("limit must be between 1 and 100")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			respond.SafeError(rr, http.StatusBadRequest, tt.err)

			if got := body(t, rr)["error"]; got != tt.err.Error() {
				t.Fatalf("error = %q, want %q", got, tt.err.Error())
			}
		})
	}
}

func TestSafeError_MasksInternalMessages(t *testing.T) {
	rr := httptest.NewRecorder()
	respond.SafeError(rr, http.StatusBadRequest, errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	if got := body(t, rr)["error"]; got != "internal server error" {
		t.Fatalf("error = %q, want generic", got)
	}
}

func TestSafeError_Masks5xxEvenWhenSafe(t *testing.T) {
	rr := httptest.NewRecorder()
	respond.SafeError(rr, http.StatusInternalServerError, errors.New("user not found"))

	if got := body(t, rr)["error"]; got != "internal server error" {
		t.Fatalf("error = %q, want generic for 5xx", got)
	}
}

func TestSanitizeError_MasksDSNPassword(t *testing.T) {
	err := errors.New(`connect "postgres://app:hunter2@db:5432/app": refused`)
	got := respond.SanitizeError(err)

	want := `connect "postgres://app:****@db:5432/app": refused`
	if got != want {
		t.Fatalf("SanitizeError = %q, want %q", got, want)
	}
}

func TestSanitizeError_LeavesPlainMessages(t *testing.T) {
	if got := respond.SanitizeError(errors.New("no secrets here")); got != "no secrets here" {
		t.Fatalf("SanitizeError = %q", got)
	}
	if got := respond.SanitizeError(nil); got != "" {
		t.Fatalf("SanitizeError(nil) = %q, want empty", got)
	}
}
