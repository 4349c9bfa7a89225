package utils

import (
	"strings"
	"testing"
)

func TestTruncateString(t *testing.T) {
	if got := TruncateString("short", 10); got != "short" {
		t.Errorf("expected unchanged string, got %q", got)
	}

	got := TruncateString("abcdefghij", 4)
	if !strings.HasPrefix(got, "abcd...") || !strings.Contains(got, "total: 10") {
		t.Errorf("unexpected truncation %q", got)
	}

	long := strings.Repeat("x", DefaultMaxStringLength+1)
	if got := TruncateString(long, 0); !strings.Contains(got, "truncated") {
		t.Errorf("expected default length to apply, got %d chars", len(got))
	}
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"abc", "***"},
		{"sk-1234567890", "*********7890"},
	}
	for _, tt := range tests {
		if got := MaskSecret(tt.in); got != tt.want {
			t.Errorf("MaskSecret(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
