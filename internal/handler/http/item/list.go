package item

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"itemvault/internal/common/pagination"
	"itemvault/internal/domain/entity"
	"itemvault/internal/handler/http/respond"
	"itemvault/internal/observability/logging"
	itemUC "itemvault/internal/usecase/item"
)

type ListHandler struct {
	Svc           *itemUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP lists items, optionally filtered to one owner via the owner_id
// query parameter.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("invalid pagination parameters", slog.String("error", err.Error()))
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var items []DTO
	if ownerStr := r.URL.Query().Get("owner_id"); ownerStr != "" {
		ownerID, err := strconv.ParseInt(ownerStr, 10, 64)
		if err != nil || ownerID <= 0 {
			respond.SafeError(w, http.StatusBadRequest, errInvalidOwner)
			return
		}
		list, err := h.Svc.ListByOwner(ctx, ownerID, params.Offset, params.Limit)
		if err != nil {
			logger.Error("failed to list items by owner",
				slog.String("error", err.Error()),
				slog.Int64("owner_id", ownerID))
			respond.SafeError(w, http.StatusInternalServerError, err)
			return
		}
		items = toDTOs(list)
	} else {
		list, err := h.Svc.List(ctx, params.Offset, params.Limit)
		if err != nil {
			logger.Error("failed to list items",
				slog.String("error", err.Error()),
				slog.Int("offset", params.Offset),
				slog.Int("limit", params.Limit))
			respond.SafeError(w, http.StatusInternalServerError, err)
			return
		}
		items = toDTOs(list)
	}

	respond.JSON(w, http.StatusOK, pagination.NewResponse(items, params))
}

func toDTOs(list []*entity.Item) []DTO {
	dtos := make([]DTO, 0, len(list))
	for _, it := range list {
		dtos = append(dtos, toDTO(it))
	}
	return dtos
}

var errInvalidOwner = errors.New("owner_id must be a positive integer")
