package jsonalchemist

import (
	"context"
	"errors"
	"strings"

	"github.com/leofalp/jsonalchemist/core/classify"
	"github.com/leofalp/jsonalchemist/core/parse"
	"github.com/leofalp/jsonalchemist/core/recovery"
	"github.com/leofalp/jsonalchemist/core/repair"
	"github.com/leofalp/jsonalchemist/core/settings"
	"github.com/leofalp/jsonalchemist/core/transform"
	"github.com/leofalp/jsonalchemist/providers/ai"
	"github.com/leofalp/jsonalchemist/providers/observability"
)

// ForeignLiteralMessage is the status shown for input that looks like a
// composite literal dump.
const ForeignLiteralMessage = "Detected foreign literal format. Use 'format' or 'fix' to convert."

// ErrEmptyInput is returned by Fix for blank input.
var ErrEmptyInput = errors.New("jsonalchemist: input is empty")

// Source says where a fixed document came from.
type Source string

const (
	SourceLocal Source = "local"
	SourceAI    Source = "ai"
)

// Alchemist runs the local pipeline and, when asked to Fix, escalates to the
// repair provider chosen by the settings. It is safe for concurrent use, but
// only one escalation runs at a time; an overlapping one fails with
// repair.ErrBusy.
type Alchemist struct {
	recoverer   *recovery.Recoverer
	registry    *ai.Registry
	middlewares []repair.Middleware
	observer    observability.Provider
	pending     []binding

	guard *repair.Guard
}

// New builds an Alchemist with the default recovery chains and the managed
// and configurable providers.
func New(opts ...Option) *Alchemist {
	a := &Alchemist{}
	for _, opt := range opts {
		opt(a)
	}

	if a.recoverer == nil {
		a.recoverer = recovery.New(recovery.WithObserver(a.observer))
	}
	if a.registry == nil {
		a.registry = ai.NewRegistry()
	}
	if len(a.pending) > 0 {
		a.registry = a.registry.Clone()
	}
	for _, b := range a.pending {
		a.registry.Register(b.tag, b.provider)
	}
	a.pending = nil

	a.guard = repair.NewGuard(dispatcher{a: a})
	return a
}

// ProviderFor returns the provider bound to tag, wrapped in the configured
// middleware.
func (a *Alchemist) ProviderFor(tag settings.ProviderTag) (repair.Provider, error) {
	p, err := a.registry.For(tag)
	if err != nil {
		return nil, err
	}
	return repair.Wrap(p, a.middlewares...), nil
}

// Busy reports whether an escalation is in flight.
func (a *Alchemist) Busy() bool { return a.guard.Busy() }

// Detection is the live status of an input.
type Detection struct {
	Kind classify.Classification
	// Rule is the classifier rule that decided Kind, empty for blank input
	// and for input that local recovery accepts.
	Rule string
	// Chain is the recovery chain that accepted the input, if any.
	Chain transform.ChainName
	// Err is the parse error for Unknown input.
	Err error
	// Message is a one-line status for display.
	Message string
}

// Detect reports how the input would be treated. Blank input is Unknown
// with no error. Input that local recovery accepts is JSON; otherwise the
// classifier heuristics decide between ForeignLiteral and Unknown.
func (a *Alchemist) Detect(text string) Detection {
	if strings.TrimSpace(text) == "" {
		return Detection{Kind: classify.Unknown}
	}

	out, err := a.recoverer.Recover(text)
	if err == nil {
		return Detection{Kind: classify.JSON, Chain: out.Chain, Message: "Valid JSON"}
	}

	kind, rule := classify.Explain(text)
	if kind == classify.ForeignLiteral {
		return Detection{Kind: kind, Rule: rule, Message: ForeignLiteralMessage}
	}
	return Detection{Kind: classify.Unknown, Rule: rule, Err: err, Message: err.Error()}
}

// Validate reports whether text is usable. Blank input is valid. Otherwise
// the local recovery chains must accept it, and the error is the raw input's
// *parse.SyntaxError.
func (a *Alchemist) Validate(text string) (bool, error) {
	if strings.TrimSpace(text) == "" {
		return true, nil
	}
	if _, err := a.recoverer.Recover(text); err != nil {
		return false, err
	}
	return true, nil
}

// Format recovers text locally and renders it with two-space indentation.
func (a *Alchemist) Format(text string) (string, error) {
	out, err := a.recoverer.Recover(text)
	if err != nil {
		return "", err
	}
	return parse.Pretty(out.Value), nil
}

// Minify recovers text locally and renders it without whitespace.
func (a *Alchemist) Minify(text string) (string, error) {
	out, err := a.recoverer.Recover(text)
	if err != nil {
		return "", err
	}
	return parse.Compact(out.Value), nil
}

// StripResult is the outcome of Strip.
type StripResult struct {
	// Text is the pretty-printed document when the stripped text parses,
	// otherwise the stripped text as is.
	Text string
	// Formatted is true when Text was re-rendered.
	Formatted bool
	// Err is the parse error of the stripped text, if any.
	Err error
}

// Strip removes comments with the given mode and pretty-prints the result
// when it parses.
func (a *Alchemist) Strip(text string, mode transform.CommentMode) StripResult {
	stripped := mode.Stripper()(text)
	v, err := parse.Parse(stripped)
	if err != nil {
		return StripResult{Text: stripped, Err: err}
	}
	return StripResult{Text: parse.Pretty(v), Formatted: true}
}

// FixResult is a document produced by Fix.
type FixResult struct {
	// Text is the compact document.
	Text string
	// Pretty is the document with two-space indentation.
	Pretty string
	// Source is SourceLocal or SourceAI.
	Source Source
	// Chain is the recovery chain that accepted the final candidate.
	Chain transform.ChainName
	// Kind is the classification of the original input.
	Kind classify.Classification
	// Provider names the repair provider for SourceAI results.
	Provider string
}

// Fix returns a valid document for text. Local recovery is tried first; if
// it fails the provider selected by cfg.Provider is asked, and its answer
// must pass local recovery too. Provider errors are returned unchanged.
func (a *Alchemist) Fix(ctx context.Context, text string, cfg settings.Settings) (*FixResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	observer := a.observer
	if observer == nil {
		observer = observability.ObserverFromContext(ctx)
	} else {
		ctx = observability.ContextWithObserver(ctx, observer)
	}
	var span observability.Span
	if observer != nil {
		ctx, span = observer.StartSpan(ctx, observability.SpanFix,
			observability.Int(observability.AttrInputSize, len(text)),
		)
		defer span.End()
	}

	kind := classify.Classify(text)
	if span != nil {
		span.SetAttributes(observability.String(observability.AttrClassification, kind.String()))
	}

	if out, err := a.recoverer.RecoverContext(ctx, text); err == nil {
		res := newFixResult(out, SourceLocal, kind)
		finishSpan(span, res, nil)
		return res, nil
	}

	if err := ctx.Err(); err != nil {
		finishSpan(span, nil, err)
		return nil, err
	}

	answer, err := a.guard.Repair(ctx, text, cfg)
	if err != nil {
		finishSpan(span, nil, err)
		return nil, err
	}

	out, err := a.recoverer.RecoverContext(ctx, answer)
	if span != nil {
		span.AddEvent(observability.EventRepairValidation, observability.Bool("valid", err == nil))
	}
	if err != nil {
		err = &repair.ContentError{Provider: string(cfg.Provider), Msg: "AI output is not valid JSON", Err: err}
		finishSpan(span, nil, err)
		return nil, err
	}

	res := newFixResult(out, SourceAI, kind)
	if p, perr := a.registry.For(cfg.Provider); perr == nil {
		res.Provider = p.Name()
	}
	finishSpan(span, res, nil)
	return res, nil
}

func newFixResult(out recovery.Outcome, source Source, kind classify.Classification) *FixResult {
	return &FixResult{
		Text:   parse.Compact(out.Value),
		Pretty: parse.Pretty(out.Value),
		Source: source,
		Chain:  out.Chain,
		Kind:   kind,
	}
}

func finishSpan(span observability.Span, res *FixResult, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(observability.StatusError, err.Error())
		return
	}
	span.SetAttributes(
		observability.String(observability.AttrFixSource, string(res.Source)),
		observability.String(observability.AttrChain, string(res.Chain)),
	)
	span.SetStatus(observability.StatusOK, "")
}

// dispatcher routes a repair to the provider named by the settings.
type dispatcher struct {
	a *Alchemist
}

func (d dispatcher) Name() string { return "dispatcher" }

func (d dispatcher) Repair(ctx context.Context, text string, cfg settings.Settings) (string, error) {
	p, err := d.a.ProviderFor(cfg.Provider)
	if err != nil {
		return "", err
	}
	return p.Repair(ctx, text, cfg)
}
