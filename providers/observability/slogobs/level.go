package slogobs

import (
	"log/slog"
	"os"
	"strings"
)

// LevelTrace sits below slog.LevelDebug.
const LevelTrace = slog.LevelDebug - 4

// ParseLevel maps TRACE, DEBUG, INFO, WARN/WARNING and ERROR (any case) to a
// slog.Level. The second result is false for anything else, in which case
// INFO is returned.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return LevelTrace, true
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO":
		return slog.LevelInfo, true
	case "WARN", "WARNING":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// LevelFromEnv reads JSONALCHEMIST_LOG_LEVEL, then LOG_LEVEL. Default: WARN,
// so CLI output stays clean unless asked otherwise.
func LevelFromEnv() slog.Level {
	s := os.Getenv("JSONALCHEMIST_LOG_LEVEL")
	if s == "" {
		s = os.Getenv("LOG_LEVEL")
	}
	if s == "" {
		return slog.LevelWarn
	}
	level, _ := ParseLevel(s)
	return level
}

// levelString names a level; anything below DEBUG is TRACE.
func levelString(level slog.Level) string {
	switch {
	case level < slog.LevelDebug:
		return "TRACE"
	case level < slog.LevelInfo:
		return "DEBUG"
	case level < slog.LevelWarn:
		return "INFO"
	case level < slog.LevelError:
		return "WARN"
	default:
		return "ERROR"
	}
}
