package cart

import (
	"context"
	"errors"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	apierrors "github.com/usecart/usecart-go/internal/errors"
)

// RetryPolicy configures Retry. Zero fields take the defaults noted below.
type RetryPolicy struct {
	MaxAttempts     int           // total attempts including the first; default 4
	InitialInterval time.Duration // default 500ms
	MaxInterval     time.Duration // default 30s
}

func (p RetryPolicy) withDefaults() RetryPolicy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 4
	}
	if p.InitialInterval <= 0 {
		p.InitialInterval = 500 * time.Millisecond
	}
	if p.MaxInterval <= 0 {
		p.MaxInterval = 30 * time.Second
	}
	return p
}

// Retry calls fn until it succeeds, returns an irrecoverable error, the
// attempts run out, or ctx ends. Waits grow exponentially and are never
// shorter than a RateLimitError's RetryAfter.
//
// Client methods never retry on their own; wrap them explicitly:
//
//	resp, err := cart.Retry(ctx, cart.RetryPolicy{}, func(ctx context.Context) (*cart.Response[[]cart.Store], error) {
//		return c.Stores.Search(ctx, params)
//	})
func Retry[T any](ctx context.Context, p RetryPolicy, fn func(context.Context) (T, error)) (T, error) {
	p = p.withDefaults()

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = p.InitialInterval
	exp.Multiplier = 2
	exp.MaxInterval = p.MaxInterval
	exp.MaxElapsedTime = 0
	exp.Reset()

	var (
		result  T
		lastErr error
	)
	// WithContext must stay outermost so the wait between attempts observes ctx.
	b := backoff.WithContext(
		backoff.WithMaxRetries(&retryAfterBackOff{BackOff: exp, lastErr: &lastErr}, uint64(p.MaxAttempts-1)),
		ctx,
	)

	op := func() error {
		v, err := fn(ctx)
		lastErr = err
		if err == nil {
			result = v
			return nil
		}
		if apierrors.IsIrrecoverable(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		log.Debug().Err(err).Dur("wait", wait).Msg("cart: retrying after recoverable error")
	}

	if err := backoff.RetryNotify(op, b, notify); err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

// retryAfterBackOff stretches the next wait to the server's Retry-After.
type retryAfterBackOff struct {
	backoff.BackOff
	lastErr *error
}

func (b *retryAfterBackOff) NextBackOff() time.Duration {
	next := b.BackOff.NextBackOff()
	if next == backoff.Stop {
		return next
	}
	var rl *RateLimitError
	if errors.As(*b.lastErr, &rl) && rl.RetryAfter != nil {
		if d := time.Duration(*rl.RetryAfter) * time.Second; d > next {
			return d
		}
	}
	return next
}
