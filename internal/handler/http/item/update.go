package item

import (
	"encoding/json"
	"errors"
	"net/http"

	"itemvault/internal/handler/http/pathutil"
	"itemvault/internal/handler/http/respond"
	itemUC "itemvault/internal/usecase/item"
)

type UpdateHandler struct{ Svc *itemUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	updated, err := h.Svc.Update(r.Context(), itemUC.UpdateInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, itemUC.ErrItemNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(updated))
}
