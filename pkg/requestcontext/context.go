// Package requestcontext provides context accessors for session- and
// request-scoped values.
//
// The CLI stamps every menu session with a correlation id so that log lines and
// audit events emitted by services can be grouped per session:
//
//	ctx = requestcontext.WithSessionID(ctx, requestcontext.NewSessionID())
//	sessionID := requestcontext.SessionID(ctx)
//
// The ops server stamps each HTTP request with a request id in the same way.
package requestcontext

import (
	"context"

	"github.com/google/uuid"
)

type (
	sessionIDKey struct{}
	requestIDKey struct{}
)

// Context keys are exported for tests that need context.WithValue directly.
var (
	ContextKeySessionID = sessionIDKey{}
	ContextKeyRequestID = requestIDKey{}
)

// NewSessionID returns a fresh random correlation id.
func NewSessionID() string {
	return uuid.NewString()
}

// SessionID retrieves the session correlation id from the context.
// Returns "" if not set.
func SessionID(ctx context.Context) string {
	if sessionID, ok := ctx.Value(ContextKeySessionID).(string); ok {
		return sessionID
	}
	return ""
}

// WithSessionID injects a session correlation id into the context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ContextKeySessionID, sessionID)
}

// RequestID retrieves the HTTP request id from the context.
// Returns "" if not set.
func RequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}
