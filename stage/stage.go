package stage

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/semaphore"
)

// ErrNotReady is wrapped by every error returned from Stage.Ready
var ErrNotReady = errors.New("stage not ready")

// Stage is one step of the proving pipeline. Implementations must accept
// concurrent calls.
type Stage[Req, Resp any] interface {
	// Ready returns nil when the stage can accept a request right now.
	// Otherwise the error describes the backpressure and wraps ErrNotReady.
	Ready(ctx context.Context) error
	// Invoke runs the stage for req. Cancelling ctx aborts the work in progress.
	Invoke(ctx context.Context, req Req) (Resp, error)
}

// Limited bounds the number of in-flight invocations of a Stage
type Limited[Req, Resp any] struct {
	name  string
	inner Stage[Req, Resp]
	sem   *semaphore.Weighted
}

var _ Stage[any, any] = (*Limited[any, any])(nil)

// NewLimited wraps inner allowing at most maxInFlight concurrent invocations.
// A zero maxInFlight returns a limiter of one.
func NewLimited[Req, Resp any](name string, inner Stage[Req, Resp], maxInFlight int64) *Limited[Req, Resp] {
	if maxInFlight <= 0 {
		maxInFlight = 1
	}
	return &Limited[Req, Resp]{
		name:  name,
		inner: inner,
		sem:   semaphore.NewWeighted(maxInFlight),
	}
}

// Ready reports ErrNotReady when every slot is taken, otherwise the inner readiness
func (l *Limited[Req, Resp]) Ready(ctx context.Context) error {
	if !l.sem.TryAcquire(1) {
		return fmt.Errorf("%s: %w: max in-flight requests reached", l.name, ErrNotReady)
	}
	l.sem.Release(1)
	return l.inner.Ready(ctx)
}

// Invoke waits for a free slot (or ctx) and calls the inner stage
func (l *Limited[Req, Resp]) Invoke(ctx context.Context, req Req) (Resp, error) {
	if err := l.sem.Acquire(ctx, 1); err != nil {
		var zero Resp
		return zero, fmt.Errorf("%s: waiting for a free slot: %w", l.name, err)
	}
	defer l.sem.Release(1)
	return l.inner.Invoke(ctx, req)
}
