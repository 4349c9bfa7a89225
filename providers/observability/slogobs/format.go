package slogobs

import (
	"os"
	"strings"
)

// Format is the log output format.
type Format string

const (
	// FormatCompact writes one line per record:
	// 2025-11-03 10:40:35  INFO Message → {"key":"value"}
	FormatCompact Format = "compact"

	// FormatJSON writes one JSON object per record.
	FormatJSON Format = "json"
)

// ParseFormat maps s to a Format, defaulting to FormatCompact.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatCompact
	}
}

// FormatFromEnv reads JSONALCHEMIST_LOG_FORMAT, then LOG_FORMAT.
func FormatFromEnv() Format {
	if f := os.Getenv("JSONALCHEMIST_LOG_FORMAT"); f != "" {
		return ParseFormat(f)
	}
	if f := os.Getenv("LOG_FORMAT"); f != "" {
		return ParseFormat(f)
	}
	return FormatCompact
}

func (f Format) String() string { return string(f) }
