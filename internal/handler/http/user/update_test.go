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

func TestUpdateHandler_PartialUpdate(t *testing.T) {
	stub := newStub()
	full := "Alice"
	stub.seed(entity.User{Email: "alice@example.com", HashedPassword: "h", FullName: &full, Active: true})
	handler := user.UpdateHandler{Svc: &userUC.Service{Repo: stub}}

	// Only the email changes; the full name survives.
	body := `{"email":"alice.new@example.com"}`
	req := httptest.NewRequest(http.MethodPut, "/users/1", strings.NewReader(body))
	req.SetPathValue("id", "1")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}

	var result user.DTO
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Email != "alice.new@example.com" {
		t.Errorf("result.Email = %q, want updated", result.Email)
	}
	if result.FullName == nil || *result.FullName != "Alice" {
		t.Errorf("result.FullName = %v, want preserved", result.FullName)
	}
	if result.UpdatedAt == nil {
		t.Error("result.UpdatedAt = nil, want set")
	}
}

func TestUpdateHandler_NotFound(t *testing.T) {
	handler := user.UpdateHandler{Svc: &userUC.Service{Repo: newStub()}}

	req := httptest.NewRequest(http.MethodPut, "/users/99", strings.NewReader(`{"email":"x@example.com"}`))
	req.SetPathValue("id", "99")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestUpdateHandler_EmailCollision(t *testing.T) {
	stub := newStub()
	stub.seed(entity.User{Email: "alice@example.com", HashedPassword: "h", Active: true})
	stub.seed(entity.User{Email: "bob@example.com", HashedPassword: "h", Active: true})
	handler := user.UpdateHandler{Svc: &userUC.Service{Repo: stub}}

	req := httptest.NewRequest(http.MethodPut, "/users/2", strings.NewReader(`{"email":"alice@example.com"}`))
	req.SetPathValue("id", "2")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusConflict)
	}
}

func TestUpdateHandler_InvalidBody(t *testing.T) {
	stub := newStub()
	stub.seed(entity.User{Email: "alice@example.com", HashedPassword: "h", Active: true})
	handler := user.UpdateHandler{Svc: &userUC.Service{Repo: stub}}

	req := httptest.NewRequest(http.MethodPut, "/users/1", strings.NewReader(`{bad`))
	req.SetPathValue("id", "1")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}
