package recovery

import (
	"context"

	"github.com/kaptinlin/jsonrepair"

	"github.com/leofalp/jsonalchemist/core/parse"
	"github.com/leofalp/jsonalchemist/core/transform"
	"github.com/leofalp/jsonalchemist/internal/utils"
	"github.com/leofalp/jsonalchemist/providers/observability"
)

// Outcome is a successful recovery.
type Outcome struct {
	// Value is the parsed document.
	Value parse.Value
	// Chain names the rewrite that produced the parsable candidate.
	Chain transform.ChainName
	// Candidate is the text that parsed.
	Candidate string
}

// Recoverer runs the recovery chains. It holds no per-call state and is safe
// for concurrent use.
type Recoverer struct {
	mode        transform.CommentMode
	localRepair bool
	observer    observability.Provider
	chains      []transform.Chain
}

// New builds a Recoverer with the heuristic comment stripper and no
// jsonrepair fallback.
func New(opts ...Option) *Recoverer {
	r := &Recoverer{mode: transform.CommentHeuristic}
	for _, opt := range opts {
		opt(r)
	}

	r.chains = transform.DefaultChains(r.mode)
	if r.localRepair {
		r.chains = append(r.chains, transform.NewChain(transform.ChainLocalRepair, repairOrKeep))
	}
	return r
}

// Chains returns the chains in the order they are tried.
func (r *Recoverer) Chains() []transform.Chain {
	return append([]transform.Chain(nil), r.chains...)
}

// Recover parses text, falling back through the chains. On total failure the
// error is the identity chain's *parse.SyntaxError.
func (r *Recoverer) Recover(text string) (Outcome, error) {
	return r.RecoverContext(context.Background(), text)
}

// RecoverContext is Recover with an observer and span taken from ctx when
// none was configured.
func (r *Recoverer) RecoverContext(ctx context.Context, text string) (Outcome, error) {
	observer := r.observer
	if observer == nil {
		observer = observability.ObserverFromContext(ctx)
	}

	var span observability.Span
	if observer != nil {
		ctx, span = observer.StartSpan(ctx, observability.SpanRecover,
			observability.Int(observability.AttrInputSize, len(text)),
		)
		defer span.End()
		observer.Debug(ctx, "recovery started",
			observability.String(observability.AttrInputPreview, utils.TruncateString(text, 120)),
		)
	}

	var identityErr error
	for i, chain := range r.chains {
		candidate := chain.Apply(text)
		value, err := parse.Parse(candidate)
		if err == nil {
			if observer != nil {
				span.SetAttributes(
					observability.String(observability.AttrChain, string(chain.Name)),
					observability.Int(observability.AttrChainAttempts, i+1),
				)
				span.SetStatus(observability.StatusOK, "")
				observer.Counter(observability.MetricRecoveryOutcome).Add(ctx, 1,
					observability.String(observability.AttrChain, string(chain.Name)),
				)
			}
			return Outcome{Value: value, Chain: chain.Name, Candidate: candidate}, nil
		}

		if i == 0 {
			identityErr = err
		}
		if span != nil {
			span.AddEvent(observability.EventCandidateFailed,
				observability.String(observability.AttrChain, string(chain.Name)),
				observability.Error(err),
			)
		}
	}

	if observer != nil {
		span.SetAttributes(observability.Int(observability.AttrChainAttempts, len(r.chains)))
		span.RecordError(identityErr)
		span.SetStatus(observability.StatusError, "recovery exhausted")
		observer.Counter(observability.MetricRecoveryOutcome).Add(ctx, 1,
			observability.String(observability.AttrChain, "none"),
		)
	}
	return Outcome{}, identityErr
}

// Recover runs text through a default Recoverer.
func Recover(text string) (Outcome, error) {
	return defaultRecoverer.Recover(text)
}

var defaultRecoverer = New()

// repairOrKeep leaves the text unchanged when jsonrepair gives up, so the
// chain stays a total function.
func repairOrKeep(text string) string {
	repaired, err := jsonrepair.JSONRepair(text)
	if err != nil {
		return text
	}
	return repaired
}
