package user_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"itemvault/internal/domain/entity"
	"itemvault/internal/handler/http/user"
	userUC "itemvault/internal/usecase/user"
)

func TestCreateHandler_Success(t *testing.T) {
	handler := user.CreateHandler{Svc: &userUC.Service{Repo: newStub()}}

	body := `{"email":"alice@example.com","password":"s3cret-pass","full_name":"Alice"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusCreated)
	}

	var result user.DTO
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.ID == 0 {
		t.Error("result.ID = 0, want assigned")
	}
	if result.Email != "alice@example.com" {
		t.Errorf("result.Email = %q, want %q", result.Email, "alice@example.com")
	}
	if result.FullName == nil || *result.FullName != "Alice" {
		t.Errorf("result.FullName = %v, want Alice", result.FullName)
	}
	if !result.Active {
		t.Error("result.Active = false, want true by default")
	}
}

func TestCreateHandler_NoPasswordInResponse(t *testing.T) {
	handler := user.CreateHandler{Svc: &userUC.Service{Repo: newStub()}}

	body := `{"email":"alice@example.com","password":"s3cret-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	raw := rr.Body.String()
	if strings.Contains(raw, "s3cret-pass") || strings.Contains(raw, "password") {
		t.Fatalf("response leaks password material: %s", raw)
	}
}

func TestCreateHandler_DuplicateEmail(t *testing.T) {
	stub := newStub()
	stub.seed(entity.User{Email: "alice@example.com", HashedPassword: "h", Active: true})
	handler := user.CreateHandler{Svc: &userUC.Service{Repo: stub}}

	body := `{"email":"alice@example.com","password":"s3cret-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusConflict)
	}
}

func TestCreateHandler_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{not json`},
		{"missing email", `{"password":"s3cret-pass"}`},
		{"missing password", `{"email":"alice@example.com"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := user.CreateHandler{Svc: &userUC.Service{Repo: newStub()}}

			req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
			}
		})
	}
}
