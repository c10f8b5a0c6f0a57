package user

import (
	"errors"
	"net/http"

	"itemvault/internal/handler/http/pathutil"
	"itemvault/internal/handler/http/respond"
	userUC "itemvault/internal/usecase/user"
)

type GetHandler struct{ Svc *userUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	u, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, userUC.ErrUserNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(u))
}
