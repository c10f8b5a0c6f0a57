// Package item provides HTTP handlers for item management endpoints.
package item

import (
	"log/slog"
	"net/http"

	"itemvault/internal/common/pagination"
	itemUC "itemvault/internal/usecase/item"
)

// Register registers all item-related HTTP handlers with the given mux.
// The mux itself sits behind the Authz middleware, so every route requires an
// authenticated caller.
func Register(mux *http.ServeMux, svc *itemUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET /items", ListHandler{Svc: svc, PaginationCfg: paginationCfg, Logger: logger})
	mux.Handle("GET /items/{id}", GetHandler{Svc: svc})
	mux.Handle("POST /items", CreateHandler{Svc: svc})
	mux.Handle("PUT /items/{id}", UpdateHandler{Svc: svc})
	mux.Handle("DELETE /items/{id}", DeleteHandler{Svc: svc})
}
