package shared

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/wonderwords/internal/store"
)

// Key type for context values
type ContextKey string

// Context keys for various values
const (
	// SessionIDContextKey is the context key for the browser session ID
	SessionIDContextKey ContextKey = "sessionID"

	// HistoryContextKey is the context key for the session's word history
	HistoryContextKey ContextKey = "history"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"
)

// SetTraceID adds a fresh trace ID to the context. Trace IDs are random
// UUIDs written as 32 hex characters without dashes.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// WithSession stores the session ID and its word history in the context.
func WithSession(ctx context.Context, sessionID string, history *store.History) context.Context {
	ctx = context.WithValue(ctx, SessionIDContextKey, sessionID)
	return context.WithValue(ctx, HistoryContextKey, history)
}

// GetSessionID returns the session ID stored by WithSession, or "".
func GetSessionID(ctx context.Context) string {
	id, _ := ctx.Value(SessionIDContextKey).(string)
	return id
}

// GetHistory returns the word history stored by WithSession.
func GetHistory(ctx context.Context) (*store.History, bool) {
	history, ok := ctx.Value(HistoryContextKey).(*store.History)
	return history, ok && history != nil
}
