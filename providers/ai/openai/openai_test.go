package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/leofalp/jsonalchemist/core/repair"
	"github.com/leofalp/jsonalchemist/core/settings"
)

func configFor(baseURL string) settings.Settings {
	cfg := settings.Default()
	cfg.Provider = settings.ProviderOpenAI
	cfg.OpenAI = settings.OpenAIConfig{BaseURL: baseURL, APIKey: "test-key"}
	return cfg
}

func TestEndpoint(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"https://api.openai.com/v1", "https://api.openai.com/v1/chat/completions"},
		{"https://api.openai.com/v1/", "https://api.openai.com/v1/chat/completions"},
		{"http://localhost:11434/v1", "http://localhost:11434/v1/chat/completions"},
	}
	for _, tt := range tests {
		if got := Endpoint(tt.in); got != tt.want {
			t.Errorf("Endpoint(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRepair_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected Authorization header %q", got)
		}

		var raw map[string]any
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if raw["model"] != "gpt-3.5-turbo" {
			t.Errorf("expected default model, got %v", raw["model"])
		}
		if temp, ok := raw["temperature"]; !ok || temp != 0.0 {
			t.Errorf("expected explicit temperature 0, got %v (present=%v)", temp, ok)
		}
		if raw["stream"] != false {
			t.Errorf("expected stream=false, got %v", raw["stream"])
		}
		msgs := raw["messages"].([]any)
		if len(msgs) != 2 {
			t.Fatalf("expected 2 messages, got %d", len(msgs))
		}
		system := msgs[0].(map[string]any)
		user := msgs[1].(map[string]any)
		if system["role"] != "system" || system["content"] != repair.Instructions {
			t.Errorf("unexpected system message %v", system["role"])
		}
		if user["role"] != "user" || user["content"] != "map[a:1]" {
			t.Errorf("unexpected user message %v", user)
		}

		fmt.Fprint(w, `{"id":"x","choices":[{"index":0,"message":{"role":"assistant","content":"`+"```json\\n"+`{\"a\":1}\n`+"```"+`"}}]}`)
	}))
	defer server.Close()

	out, err := New().WithHttpClient(server.Client()).Repair(context.Background(), "map[a:1]", configFor(server.URL+"/v1/"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != `{"a":1}` {
		t.Errorf("expected fence-stripped answer, got %q", out)
	}
}

func TestRepair_CustomModel(t *testing.T) {
	var model string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatCompletionRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		model = req.Model
		fmt.Fprint(w, `{"choices":[{"message":{"content":"[1]"}}]}`)
	}))
	defer server.Close()

	cfg := configFor(server.URL)
	cfg.OpenAI.Model = "llama3"
	if _, err := New().Repair(context.Background(), "x", cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if model != "llama3" {
		t.Errorf("expected configured model, got %q", model)
	}
}

func TestRepair_ConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  settings.OpenAIConfig
		msg  string
	}{
		{"missing key", settings.OpenAIConfig{BaseURL: "http://x"}, "API Key is required"},
		{"missing base url", settings.OpenAIConfig{APIKey: "k"}, "Base URL is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := settings.Default()
			cfg.OpenAI = tt.cfg
			_, err := New().Repair(context.Background(), "x", cfg)
			if !errors.Is(err, repair.ErrConfig) {
				t.Fatalf("expected ErrConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("expected %q in %q", tt.msg, err.Error())
			}
		})
	}
}

func TestRepair_ResponseFailures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		sentinel error
		contains string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":"bad key"}`, repair.ErrTransport, `API Error: 401 - {"error":"bad key"}`},
		{"no choices", http.StatusOK, `{"choices":[]}`, repair.ErrContent, "No content received"},
		{"empty content", http.StatusOK, `{"choices":[{"message":{"content":""}}]}`, repair.ErrContent, "No content received"},
		{"null content", http.StatusOK, `{"choices":[{"message":{"content":null}}]}`, repair.ErrContent, "No content received"},
		{"not json", http.StatusOK, `oops`, repair.ErrContent, "unreadable response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			_, err := New().Repair(context.Background(), "x", configFor(server.URL))
			if !errors.Is(err, tt.sentinel) {
				t.Fatalf("expected %v, got %v", tt.sentinel, err)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("expected %q in %q", tt.contains, err.Error())
			}

			var transportErr *repair.TransportError
			if errors.As(err, &transportErr) && transportErr.StatusCode != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, transportErr.StatusCode)
			}
		})
	}
}

func TestRepair_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := New().Repair(context.Background(), "x", configFor(url))
	if !errors.Is(err, repair.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}
