// Package auth provides JWT issuance and verification for the HTTP layer.
package auth

import "context"

// Roles carried in token claims.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Identity describes the authenticated caller attached to a request context.
type Identity struct {
	UserID int64
	Email  string
	Role   string
}

type ctxKey string

const ctxIdentity ctxKey = "identity"

// WithIdentity adds the identity to the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxIdentity, id)
}

// FromContext retrieves the identity from the context.
// The second return value is false for unauthenticated requests.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxIdentity).(Identity)
	return id, ok
}
