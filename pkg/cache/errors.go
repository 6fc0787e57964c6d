package cache

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNetwork marks a remote backend that could not be reached.
	ErrNetwork = errors.New("network error")

	// ErrClosed is returned by backends used after Close.
	ErrClosed = errors.New("cache closed")
)

// RetryableError marks a failure worth another attempt.
type RetryableError struct{ Err error }

// Retryable wraps err so [RetryWithBackoff] retries it. Nil stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err was wrapped by [Retryable].
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// backoff is the retry schedule used by remote backends.
type backoff struct {
	attempts int
	first    time.Duration
}

var defaultBackoff = backoff{attempts: 3, first: 100 * time.Millisecond}

// RetryWithBackoff calls fn until it succeeds, returns an error not wrapped by
// [Retryable], or three attempts have failed. Delays start at 100ms and double.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return defaultBackoff.run(ctx, fn)
}

func (b backoff) run(ctx context.Context, fn func() error) error {
	delay := b.first
	var err error
	for attempt := 1; ; attempt++ {
		if err = fn(); err == nil || !IsRetryable(err) || attempt == b.attempts {
			return err
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}
}
