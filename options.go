package jsonalchemist

import (
	"github.com/leofalp/jsonalchemist/core/recovery"
	"github.com/leofalp/jsonalchemist/core/repair"
	"github.com/leofalp/jsonalchemist/core/settings"
	"github.com/leofalp/jsonalchemist/providers/ai"
	"github.com/leofalp/jsonalchemist/providers/observability"
)

// Option configures an Alchemist.
type Option func(*Alchemist)

// WithRecoverer replaces the local recovery pipeline.
func WithRecoverer(r *recovery.Recoverer) Option {
	return func(a *Alchemist) {
		a.recoverer = r
	}
}

// WithRegistry replaces the provider registry. Use an empty registry for a
// local-only Alchemist.
func WithRegistry(r *ai.Registry) Option {
	return func(a *Alchemist) {
		a.registry = r
	}
}

// WithProvider binds p to tag in the Alchemist's registry. A registry passed
// to WithRegistry is copied first and never modified.
func WithProvider(tag settings.ProviderTag, p repair.Provider) Option {
	return func(a *Alchemist) {
		a.pending = append(a.pending, binding{tag: tag, provider: p})
	}
}

// WithMiddleware wraps every repair call, outermost first.
func WithMiddleware(middlewares ...repair.Middleware) Option {
	return func(a *Alchemist) {
		a.middlewares = append(a.middlewares, middlewares...)
	}
}

// WithObserver records spans, metrics and logs for Fix calls.
func WithObserver(observer observability.Provider) Option {
	return func(a *Alchemist) {
		a.observer = observer
	}
}

type binding struct {
	tag      settings.ProviderTag
	provider repair.Provider
}
