package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// ctxKey is the type for context keys to avoid collisions.
type ctxKey string

// userIDKey is the context key for the requesting user's ID.
const userIDKey ctxKey = "userID"

// userIDHeader carries the caller's identity. Authentication proper lives in
// the gateway in front of this service; by the time a request lands here the
// header is trusted.
const userIDHeader = "X-User-ID"

// GetUserID returns the requesting user's ID from context.
// Returns a 401 error if the request carried no identity.
func GetUserID(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", huma.Error401Unauthorized("User identity required")
	}
	return userID, nil
}

// getUserID returns the requesting user's ID from context, or "" when the
// request carried no identity. Plain handlers reject "" themselves.
func getUserID(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey).(string)
	return userID
}

// setUserID stores the user ID in context.
func setUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// identityMiddleware copies the X-User-ID header into the request context.
// Requests without the header continue; handlers that need an identity
// reject them via GetUserID.
func identityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID := r.Header.Get(userIDHeader); userID != "" {
			r = r.WithContext(setUserID(r.Context(), userID))
		}
		next.ServeHTTP(w, r)
	})
}
