package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/leofalp/jsonalchemist/core/repair"
	"github.com/leofalp/jsonalchemist/core/settings"
	"github.com/leofalp/jsonalchemist/internal/utils"
)

// LogLevel controls how much of each repair call is logged.
type LogLevel int

const (
	// LogLevelMinimal logs provider, duration and sizes.
	LogLevelMinimal LogLevel = iota
	// LogLevelVerbose also logs truncated input and output text.
	//
	// The text may contain secrets; keep this to local debugging.
	LogLevelVerbose
)

const truncateLen = 200

// Logging writes one entry before and one after every repair call.
func Logging(logger *slog.Logger, level LogLevel) repair.Middleware {
	return func(next repair.Func) repair.Func {
		return func(ctx context.Context, text string, cfg settings.Settings) (string, error) {
			attrs := []any{
				slog.String("provider", string(cfg.Provider)),
				slog.Int("input_size", len(text)),
			}
			if level >= LogLevelVerbose {
				attrs = append(attrs, slog.String("input", utils.TruncateString(text, truncateLen)))
			}
			logger.InfoContext(ctx, "repair request", attrs...)

			start := time.Now()
			out, err := next(ctx, text, cfg)
			elapsed := time.Since(start)

			if err != nil {
				logger.ErrorContext(ctx, "repair failed",
					slog.String("provider", string(cfg.Provider)),
					slog.Duration("duration", elapsed),
					slog.String("error", err.Error()),
				)
				return "", err
			}

			done := []any{
				slog.String("provider", string(cfg.Provider)),
				slog.Duration("duration", elapsed),
				slog.Int("output_size", len(out)),
			}
			if level >= LogLevelVerbose {
				done = append(done, slog.String("output", utils.TruncateString(out, truncateLen)))
			}
			logger.InfoContext(ctx, "repair completed", done...)
			return out, nil
		}
	}
}
