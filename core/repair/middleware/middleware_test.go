package middleware

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/leofalp/jsonalchemist/core/repair"
	"github.com/leofalp/jsonalchemist/core/settings"
)

// scriptedProvider returns the queued errors in order, then succeeds.
type scriptedProvider struct {
	errs  []error
	calls int
}

func (p *scriptedProvider) Name() string { return "scripted" }

func (p *scriptedProvider) Repair(ctx context.Context, text string, cfg settings.Settings) (string, error) {
	p.calls++
	if len(p.errs) > 0 {
		err := p.errs[0]
		p.errs = p.errs[1:]
		return "", err
	}
	return `{"ok":true}`, nil
}

func fastRetry(n int) RetryConfig {
	return RetryConfig{MaxRetries: n, InitialBackoff: time.Millisecond, MaxBackoff: 2 * time.Millisecond}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	p := &scriptedProvider{errs: []error{
		&repair.TransportError{Provider: "x", StatusCode: 503, Body: "busy"},
		&repair.TransportError{Provider: "x", Err: io.ErrUnexpectedEOF},
	}}

	out, err := repair.Wrap(p, Retry(fastRetry(3))).Repair(context.Background(), "t", settings.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != `{"ok":true}` || p.calls != 3 {
		t.Errorf("got %q after %d calls", out, p.calls)
	}
}

func TestRetry_NonRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"config", &repair.ConfigError{Provider: "x", Msg: "no key"}},
		{"content", &repair.ContentError{Provider: "x", Msg: "empty"}},
		{"client status", &repair.TransportError{Provider: "x", StatusCode: 401}},
		{"busy", repair.ErrBusy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &scriptedProvider{errs: []error{tt.err}}
			_, err := repair.Wrap(p, Retry(fastRetry(3))).Repair(context.Background(), "t", settings.Default())
			if !errors.Is(err, tt.err) {
				t.Errorf("expected original error, got %v", err)
			}
			if p.calls != 1 {
				t.Errorf("expected a single call, got %d", p.calls)
			}
		})
	}
}

func TestRetry_Exhausted(t *testing.T) {
	transient := &repair.TransportError{Provider: "x", StatusCode: 429}
	p := &scriptedProvider{errs: []error{transient, transient, transient}}

	_, err := repair.Wrap(p, Retry(fastRetry(2))).Repair(context.Background(), "t", settings.Default())
	if !errors.Is(err, ErrRetryExhausted) {
		t.Fatalf("expected ErrRetryExhausted, got %v", err)
	}
	if !errors.Is(err, repair.ErrTransport) {
		t.Errorf("expected last error to stay inspectable, got %v", err)
	}
	if p.calls != 3 {
		t.Errorf("expected 3 calls, got %d", p.calls)
	}
}

func TestRetry_ContextCanceledBetweenAttempts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &scriptedProvider{errs: []error{&repair.TransportError{Provider: "x", StatusCode: 500}}}
	cfg := RetryConfig{MaxRetries: 1, InitialBackoff: time.Hour}

	_, err := repair.Wrap(p, Retry(cfg)).Repair(ctx, "t", settings.Default())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestComputeBackoff_Capped(t *testing.T) {
	cfg := RetryConfig{}
	applyRetryDefaults(&cfg)
	cfg.JitterFraction = 0

	if got := computeBackoff(cfg, 0); got != time.Second {
		t.Errorf("expected 1s, got %v", got)
	}
	if got := computeBackoff(cfg, 10); got != 30*time.Second {
		t.Errorf("expected cap of 30s, got %v", got)
	}
}

type deadlineProvider struct{ deadline bool }

func (p *deadlineProvider) Name() string { return "deadline" }

func (p *deadlineProvider) Repair(ctx context.Context, text string, cfg settings.Settings) (string, error) {
	_, p.deadline = ctx.Deadline()
	return text, nil
}

func TestTimeout_SetsDeadline(t *testing.T) {
	p := &deadlineProvider{}
	if _, err := repair.Wrap(p, Timeout(time.Minute)).Repair(context.Background(), "t", settings.Default()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.deadline {
		t.Error("expected a deadline on the provider context")
	}
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ok := &scriptedProvider{}
	if _, err := repair.Wrap(ok, Logging(logger, LogLevelVerbose)).Repair(context.Background(), "secret-ish", settings.Default()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "repair request") || !strings.Contains(out, "repair completed") {
		t.Errorf("missing log entries: %s", out)
	}
	if !strings.Contains(out, "secret-ish") {
		t.Errorf("verbose level should include input: %s", out)
	}

	buf.Reset()
	failing := &scriptedProvider{errs: []error{&repair.ContentError{Provider: "x", Msg: "empty"}}}
	if _, err := repair.Wrap(failing, Logging(logger, LogLevelMinimal)).Repair(context.Background(), "hidden", settings.Default()); err == nil {
		t.Fatal("expected error")
	}
	out = buf.String()
	if !strings.Contains(out, "repair failed") {
		t.Errorf("missing failure entry: %s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("minimal level must not log input: %s", out)
	}
}
