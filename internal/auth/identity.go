package auth

import (
	"context"

	"helpugee/internal/model"
)

// Identity is the authenticated caller of one request. It is attached to the
// request context by VerifyAccess and never shared across requests.
type Identity struct {
	UserID    uint
	Username  string
	SectionID uint
	Role      model.Role
}

type identityKey struct{}

// WithIdentity returns a context carrying the given identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom extracts the caller identity from a request context.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// UsernameFrom returns the caller's username for audit stamping, or "system"
// outside an authenticated request (migrations, seeding).
func UsernameFrom(ctx context.Context) string {
	if id, ok := IdentityFrom(ctx); ok {
		return id.Username
	}
	return "system"
}
