package middleware

import (
	"context"
	"time"

	"github.com/leofalp/jsonalchemist/core/repair"
	"github.com/leofalp/jsonalchemist/core/settings"
)

// Timeout bounds each repair call. A shorter deadline already on the context
// still wins.
func Timeout(timeout time.Duration) repair.Middleware {
	return func(next repair.Func) repair.Func {
		return func(ctx context.Context, text string, cfg settings.Settings) (string, error) {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			return next(ctx, text, cfg)
		}
	}
}
