// Package observability defines the tracing, metrics and logging interfaces
// used across jsonalchemist, plus the attribute keys and span names in
// semconv.go.
//
// A [Provider] is injected explicitly (for example through
// recovery.WithObserver) or carried in a context with [ContextWithObserver];
// components look it up with [ObserverFromContext] and treat a nil result as
// "observability disabled".
package observability
