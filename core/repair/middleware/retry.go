package middleware

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/leofalp/jsonalchemist/core/repair"
	"github.com/leofalp/jsonalchemist/core/settings"
)

// RetryConfig tunes Retry. Zero values take the defaults noted per field.
type RetryConfig struct {
	// MaxRetries is the number of attempts after the first. Default: 3.
	MaxRetries int
	// InitialBackoff is the wait before the first retry. Default: 1s.
	InitialBackoff time.Duration
	// MaxBackoff caps the backoff. Default: 30s.
	MaxBackoff time.Duration
	// BackoffFactor is the exponential multiplier. Default: 2.0.
	BackoffFactor float64
	// JitterFraction adds up to this fraction of the backoff. Default: 0.1.
	JitterFraction float64
	// RetryableFunc decides whether an error is worth another attempt.
	// Default: DefaultRetryable.
	RetryableFunc func(error) bool
}

// DefaultRetryable retries network failures and 429/5xx responses. Config,
// content and busy errors are never retried.
func DefaultRetryable(err error) bool {
	var transportErr *repair.TransportError
	if !errors.As(err, &transportErr) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	switch code := transportErr.StatusCode; {
	case code == 0:
		return true
	case code == http.StatusTooManyRequests:
		return true
	case code >= 500:
		return true
	default:
		return false
	}
}

func applyRetryDefaults(config *RetryConfig) {
	if config.MaxRetries == 0 {
		config.MaxRetries = 3
	}
	if config.InitialBackoff == 0 {
		config.InitialBackoff = time.Second
	}
	if config.MaxBackoff == 0 {
		config.MaxBackoff = 30 * time.Second
	}
	if config.BackoffFactor == 0 {
		config.BackoffFactor = 2.0
	}
	if config.JitterFraction == 0 {
		config.JitterFraction = 0.1
	}
	if config.RetryableFunc == nil {
		config.RetryableFunc = DefaultRetryable
	}
}

// computeBackoff returns min(initial * factor^attempt, max) plus jitter.
func computeBackoff(config RetryConfig, attempt int) time.Duration {
	base := float64(config.InitialBackoff) * math.Pow(config.BackoffFactor, float64(attempt))
	if base > float64(config.MaxBackoff) {
		base = float64(config.MaxBackoff)
	}
	jitter := base * config.JitterFraction * rand.Float64() //nolint:gosec // non-cryptographic jitter
	return time.Duration(base + jitter)
}

// Retry re-runs failed repairs that config.RetryableFunc accepts. On
// exhaustion the error wraps both ErrRetryExhausted and the last failure.
func Retry(config RetryConfig) repair.Middleware {
	applyRetryDefaults(&config)

	return func(next repair.Func) repair.Func {
		return func(ctx context.Context, text string, cfg settings.Settings) (string, error) {
			var lastErr error
			for attempt := 0; attempt <= config.MaxRetries; attempt++ {
				if attempt > 0 {
					select {
					case <-ctx.Done():
						return "", ctx.Err()
					case <-time.After(computeBackoff(config, attempt-1)):
					}
				}

				out, err := next(ctx, text, cfg)
				if err == nil {
					return out, nil
				}
				lastErr = err
				if !config.RetryableFunc(err) {
					return "", err
				}
			}
			return "", fmt.Errorf("%w after %d retries: %w", ErrRetryExhausted, config.MaxRetries, lastErr)
		}
	}
}
