package observability

import (
	"context"
	"testing"
)

type nopSpan struct{ name string }

func (s *nopSpan) End()                          {}
func (s *nopSpan) SetAttributes(...Attribute)    {}
func (s *nopSpan) SetStatus(StatusCode, string)  {}
func (s *nopSpan) RecordError(error)             {}
func (s *nopSpan) AddEvent(string, ...Attribute) {}

func TestSpanFromContext_Empty(t *testing.T) {
	if span := SpanFromContext(context.Background()); span != nil {
		t.Errorf("expected nil span, got %v", span)
	}
}

func TestContextWithSpan(t *testing.T) {
	span := &nopSpan{name: "s"}
	ctx := ContextWithSpan(context.Background(), span)
	if got := SpanFromContext(ctx); got != span {
		t.Errorf("expected stored span, got %v", got)
	}
}

func TestObserverFromContext_Empty(t *testing.T) {
	if obs := ObserverFromContext(context.Background()); obs != nil {
		t.Errorf("expected nil observer, got %v", obs)
	}
}

func TestErrorAttribute(t *testing.T) {
	if attr := Error(nil); attr.Key != AttrError || attr.Value != "" {
		t.Errorf("unexpected attribute for nil error: %+v", attr)
	}
	if attr := Error(context.Canceled); attr.Value != "context canceled" {
		t.Errorf("unexpected attribute value: %v", attr.Value)
	}
}
