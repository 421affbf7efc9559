// Package utils provides helpers shared across go-safe-share: context keys,
// HTTP response writing, the resty based HTTP client, JWT handling and id
// generation.
package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the authenticated owner id in a request context.
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext returns the owner id stored by WithUserID. ok is false
// when the value is missing, empty or of another type.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}
