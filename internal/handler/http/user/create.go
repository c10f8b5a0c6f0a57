package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"itemvault/internal/handler/http/respond"
	userUC "itemvault/internal/usecase/user"
)

type CreateHandler struct{ Svc *userUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email     string  `json:"email"`
		Password  string  `json:"password"`
		FullName  *string `json:"full_name"`
		Active    *bool   `json:"is_active"`
		Superuser bool    `json:"is_superuser"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Email == "" || req.Password == "" {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("email and password required"))
		return
	}

	// Accounts are active unless the request says otherwise.
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	created, err := h.Svc.Create(r.Context(), userUC.CreateInput{
		Email:     req.Email,
		Password:  req.Password,
		FullName:  req.FullName,
		Active:    active,
		Superuser: req.Superuser,
	})
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, userUC.ErrEmailTaken) {
			code = http.StatusConflict
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(created))
}
