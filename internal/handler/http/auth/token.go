package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"itemvault/internal/domain/entity"
	"itemvault/internal/handler/http/requestid"
)

// Authenticator validates an email/password pair against stored accounts.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)
}

// TokenConfig holds the signing parameters for issued tokens.
type TokenConfig struct {
	Secret []byte
	TTL    time.Duration
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in"`
}

// TokenHandler creates an HTTP handler that authenticates users and issues
// JWT tokens signed with HS256.
func TokenHandler(users Authenticator, cfg TokenConfig, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := logger.With(slog.String("request_id", requestid.FromContext(r.Context())))

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("authentication failed",
				slog.String("reason", "invalid_request"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		u, err := users.Authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			log.Warn("authentication failed",
				slog.String("reason", "invalid_credentials"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		role := RoleUser
		if u.Superuser {
			role = RoleAdmin
		}

		now := time.Now()
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":  u.Email,
			"uid":  u.ID,
			"role": role,
			"iat":  now.Unix(),
			"exp":  now.Add(cfg.TTL).Unix(),
		})

		signed, err := token.SignedString(cfg.Secret)
		if err != nil {
			log.Error("token generation failed",
				slog.String("error", err.Error()),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			http.Error(w, "token generation failed", http.StatusInternalServerError)
			return
		}

		log.Info("authentication successful",
			slog.String("user_email", u.Email),
			slog.String("role", role),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(tokenResponse{
			Token:     signed,
			TokenType: "bearer",
			ExpiresIn: int64(cfg.TTL.Seconds()),
		}); err != nil {
			log.Error("failed to encode token response", slog.String("error", err.Error()))
		}
	}
}
