package auth

import (
	"context"
	"fmt"
	"net/http"

	"talk-connect-hub/internal/domain"
)

// This file provides helpers for setting and getting the authenticated user on a request context.
// The bearer middleware sets it, handlers read it.

// contextKey is a private type to avoid key collisions in the context.
type contextKey string

// UserKey is the key the authenticated user is stored under.
const UserKey = contextKey("user")

// SetUser returns a new request with the user added to its context.
func SetUser(r *http.Request, user *domain.User) *http.Request {
	ctx := context.WithValue(r.Context(), UserKey, user)
	return r.WithContext(ctx)
}

// GetUser retrieves the authenticated user from the context.
func GetUser(ctx context.Context) (*domain.User, error) {
	user, ok := ctx.Value(UserKey).(*domain.User)
	if !ok || user == nil {
		// The middleware is missing or misconfigured.
		return nil, fmt.Errorf("no user in context")
	}
	return user, nil
}
