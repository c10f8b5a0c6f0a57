package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"itemvault/internal/handler/http/pathutil"
	"itemvault/internal/handler/http/respond"
	userUC "itemvault/internal/usecase/user"
)

type UpdateHandler struct{ Svc *userUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Email     *string `json:"email"`
		Password  *string `json:"password"`
		FullName  *string `json:"full_name"`
		Active    *bool   `json:"is_active"`
		Superuser *bool   `json:"is_superuser"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	updated, err := h.Svc.Update(r.Context(), userUC.UpdateInput{
		ID:        id,
		Email:     req.Email,
		Password:  req.Password,
		FullName:  req.FullName,
		Active:    req.Active,
		Superuser: req.Superuser,
	})
	if err != nil {
		code := http.StatusBadRequest
		switch {
		case errors.Is(err, userUC.ErrUserNotFound):
			code = http.StatusNotFound
		case errors.Is(err, userUC.ErrEmailTaken):
			code = http.StatusConflict
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(updated))
}
