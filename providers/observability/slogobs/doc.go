// Package slogobs implements observability.Provider on top of log/slog.
//
// Spans and metric updates are written as log records; counters also keep
// their running totals in memory so they can be read back with
// [Observer.CounterValue]. Output goes through [Handler], which writes either
// a compact single-line format or JSON. Format and level default to the
// JSONALCHEMIST_LOG_FORMAT and JSONALCHEMIST_LOG_LEVEL environment variables.
package slogobs
