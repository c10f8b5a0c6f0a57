package http

import (
	"net/http"

	"itemvault/internal/handler/http/respond"
)

// RootHandler serves the welcome message at /.
type RootHandler struct{}

func (h RootHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to itemvault",
	})
}
