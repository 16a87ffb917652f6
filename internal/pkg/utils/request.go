package utils

import (
	"context"

	"vitalsync-client/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

// EnsureRequestID returns ctx carrying a request id, minting one when the
// caller did not supply any. The id correlates every log line of one
// logical operation.
func EnsureRequestID(ctx context.Context) (context.Context, string) {
	if requestID := GetRequestID(ctx); requestID != "" {
		return ctx, requestID
	}
	requestID := uuid.NewString()
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID), requestID
}
