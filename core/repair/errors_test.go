package repair

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"config", &ConfigError{Provider: "openai", Msg: "API Key is required"}, ErrConfig},
		{"transport status", &TransportError{Provider: "openai", StatusCode: 401, Body: "denied"}, ErrTransport},
		{"transport network", &TransportError{Provider: "openai", Err: io.ErrUnexpectedEOF}, ErrTransport},
		{"content", &ContentError{Provider: "gemini", Msg: "No response from AI"}, ErrContent},
	}

	sentinels := []error{ErrConfig, ErrTransport, ErrContent, ErrBusy}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("fix: %w", tt.err)
			for _, s := range sentinels {
				if got, want := errors.Is(wrapped, s), s == tt.sentinel; got != want {
					t.Errorf("errors.Is(%v, %v) = %v, want %v", wrapped, s, got, want)
				}
			}
		})
	}
}

func TestTransportError_Message(t *testing.T) {
	err := &TransportError{Provider: "openai", StatusCode: 500, Body: `{"error":"boom"}`}
	if got := err.Error(); got != `API Error: 500 - {"error":"boom"}` {
		t.Errorf("unexpected message %q", got)
	}

	netErr := &TransportError{Provider: "openai", Err: io.ErrUnexpectedEOF}
	if !errors.Is(netErr, io.ErrUnexpectedEOF) {
		t.Error("expected cause to unwrap")
	}
}
