package shared

import (
	"context"
	"time"
)

// Timeouts bounds every outbound call made by the usecases.
type Timeouts struct {
	Provider time.Duration
	Storage  time.Duration
	Notify   time.Duration
}

func DefaultTimeouts() Timeouts {
	return Timeouts{
		Provider: 8 * time.Second,
		Storage:  5 * time.Second,
		Notify:   5 * time.Second,
	}
}

// Detached runs fn on a context that survives cancellation of parent but is bounded by d.
func Detached(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), d)
	defer cancel()
	return fn(ctx)
}
