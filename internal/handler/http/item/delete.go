package item

import (
	"errors"
	"net/http"

	"itemvault/internal/handler/http/pathutil"
	"itemvault/internal/handler/http/respond"
	itemUC "itemvault/internal/usecase/item"
)

type DeleteHandler struct{ Svc *itemUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	deleted, err := h.Svc.Delete(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, itemUC.ErrItemNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(deleted))
}
