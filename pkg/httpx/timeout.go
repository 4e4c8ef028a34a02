package httpx

import (
	"context"
	"time"
)

// ContextWithTimeout — как context.WithTimeout, но d <= 0 означает "без таймаута".
func ContextWithTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
