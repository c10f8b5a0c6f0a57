// Package user provides HTTP handlers for user management endpoints.
package user

import (
	"log/slog"
	"net/http"

	"itemvault/internal/common/pagination"
	"itemvault/internal/handler/http/auth"
	userUC "itemvault/internal/usecase/user"
)

// Register registers all user-related HTTP handlers with the given mux.
// Reads are available to any authenticated caller; writes require the admin
// role (the mux itself sits behind the Authz middleware).
func Register(mux *http.ServeMux, svc *userUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET /users", ListHandler{Svc: svc, PaginationCfg: paginationCfg, Logger: logger})
	mux.Handle("GET /users/{id}", GetHandler{Svc: svc})

	mux.Handle("POST /users", auth.RequireAdmin(CreateHandler{Svc: svc}))
	mux.Handle("PUT /users/{id}", auth.RequireAdmin(UpdateHandler{Svc: svc}))
	mux.Handle("DELETE /users/{id}", auth.RequireAdmin(DeleteHandler{Svc: svc}))
}
