package utils

import (
	"context"
)

// Identity is the authenticated actor attached to a request by the auth middleware.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type contextKey string

const ContextIdentityKey contextKey = "identity"

func GetIdentityFromContext(ctx context.Context) (Identity, bool) {
	ident, ok := ctx.Value(ContextIdentityKey).(Identity)
	return ident, ok
}
