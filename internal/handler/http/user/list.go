package user

import (
	"log/slog"
	"net/http"

	"itemvault/internal/common/pagination"
	"itemvault/internal/handler/http/respond"
	"itemvault/internal/observability/logging"
	userUC "itemvault/internal/usecase/user"
)

type ListHandler struct {
	Svc           *userUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("invalid pagination parameters", slog.String("error", err.Error()))
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	users, err := h.Svc.List(ctx, params.Offset, params.Limit)
	if err != nil {
		logger.Error("failed to list users",
			slog.String("error", err.Error()),
			slog.Int("offset", params.Offset),
			slog.Int("limit", params.Limit))
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, toDTO(u))
	}
	respond.JSON(w, http.StatusOK, pagination.NewResponse(dtos, params))
}
