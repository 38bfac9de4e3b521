package auth

import (
	"context"

	"github.com/google/uuid"
)

// UserContext holds the authenticated caller's identity
type UserContext struct {
	UserID      uuid.UUID
	DisplayName string
	Email       string
	Role        string
}

type contextKey struct{}

var userContextKey contextKey

// WithUserContext stores the user context on the request context
func WithUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// FromContext retrieves the user context, if any
func FromContext(ctx context.Context) (*UserContext, bool) {
	user, ok := ctx.Value(userContextKey).(*UserContext)
	return user, ok
}
