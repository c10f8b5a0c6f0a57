package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"itemvault/internal/handler/http/respond"
)

// Authz returns middleware that requires a valid JWT for every request it
// wraps. The caller identity is added to the request context on success.
// The secret is passed in explicitly; nothing is read from ambient state.
func Authz(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := validateJWT(r.Header.Get("Authorization"), secret)
			if err != nil {
				respond.SafeError(w, http.StatusUnauthorized, fmt.Errorf("unauthorized: %w", err))
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

// RequireAdmin returns middleware that rejects authenticated callers without
// the admin role. It must run inside Authz.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := FromContext(r.Context())
		if !ok || id.Role != RoleAdmin {
			respond.SafeError(w, http.StatusForbidden, errors.New("forbidden"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func validateJWT(authz string, secret []byte) (Identity, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authz, prefix) {
		return Identity{}, errors.New("missing bearer token")
	}
	tokenString := strings.TrimPrefix(authz, prefix)
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !tok.Valid {
		return Identity{}, errors.New("invalid token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, errors.New("invalid claims")
	}
	if exp, ok := claims["exp"].(float64); !ok || int64(exp) < time.Now().Unix() {
		return Identity{}, errors.New("token expired")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return Identity{}, errors.New("invalid sub claim")
	}
	role, ok := claims["role"].(string)
	if !ok {
		return Identity{}, errors.New("invalid role claim")
	}
	uid, ok := claims["uid"].(float64)
	if !ok {
		return Identity{}, errors.New("invalid uid claim")
	}
	return Identity{UserID: int64(uid), Email: sub, Role: role}, nil
}
