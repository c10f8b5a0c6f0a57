package item

import (
	"encoding/json"
	"errors"
	"net/http"

	"itemvault/internal/handler/http/auth"
	"itemvault/internal/handler/http/respond"
	itemUC "itemvault/internal/usecase/item"
)

type CreateHandler struct{ Svc *itemUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string  `json:"title"`
		Description *string `json:"description"`
		OwnerID     int64   `json:"owner_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Title == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("title required"))
		return
	}

	// Default to the caller's own account when no owner is given.
	ownerID := req.OwnerID
	if ownerID == 0 {
		if id, ok := auth.FromContext(r.Context()); ok {
			ownerID = id.UserID
		}
	}

	created, err := h.Svc.Create(r.Context(), itemUC.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     ownerID,
	})
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, itemUC.ErrOwnerNotFound) {
			code = http.StatusUnprocessableEntity
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(created))
}
