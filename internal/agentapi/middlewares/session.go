// Package middlewares carries the HTTP middleware shared by the agent tool
// routers.
package middlewares

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// contextKey is an unexported type for context keys in this package.
// Using a custom type prevents collisions with keys from other packages
// that might use the same underlying string value.
type contextKey string

const (
	// HeaderXSessionID carries the dialogue driver's conversation session id.
	HeaderXSessionID = "X-Session-Id"

	// ContextKeySessionID is the context key for the session id.
	ContextKeySessionID contextKey = "session_id"
	// ContextKeyRequestID is the context key for the request id.
	ContextKeyRequestID contextKey = "request_id"
)

// AttachSessionMetadata lifts the request id and the driver's session id into
// the request context so handlers and slog can reach them.
func AttachSessionMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := middleware.GetReqID(r.Context())
		sessionID := r.Header.Get(HeaderXSessionID)

		ctx := context.WithValue(r.Context(), ContextKeyRequestID, requestID)
		ctx = context.WithValue(ctx, ContextKeySessionID, sessionID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID returns the session id stored by AttachSessionMetadata, or "".
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(ContextKeySessionID).(string)
	return id
}
