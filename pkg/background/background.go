// Package background runs supervised background tasks. Tasks are tracked
// so the application can wait for them during shutdown, and panics are
// recovered and logged instead of crashing the process.
package background

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
)

// Registry tracks running background tasks.
type Registry struct {
	ctx context.Context
	log *slog.Logger
	wg  sync.WaitGroup
}

// NewRegistry creates a Registry. Tasks receive ctx and should stop when
// it is cancelled.
func NewRegistry(ctx context.Context, logger *slog.Logger) *Registry {
	return &Registry{
		ctx: ctx,
		log: logger.With("component", "background"),
	}
}

// Go runs fn in a new goroutine tracked by the registry.
// A panic inside fn is recovered and logged with a stack trace.
func (r *Registry) Go(name string, fn func(ctx context.Context)) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			if err := recover(); err != nil {
				stack := debug.Stack()
				r.log.ErrorContext(r.ctx, "panic recovered in background task",
					slog.String("task", name),
					slog.Any("error", err),
					slog.String("stack", string(stack)),
				)
			}
		}()
		fn(r.ctx)
	}()
}

// Wait blocks until all tracked tasks have finished.
func (r *Registry) Wait() {
	r.wg.Wait()
}
