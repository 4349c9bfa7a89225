package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

type valueResponse struct {
	Value int `json:"value"`
}

func TestDoPostSync_Success(t *testing.T) {
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		fmt.Fprint(w, `{"value":42}`)
	}))
	defer server.Close()

	_, out, err := DoPostSync[valueResponse](context.Background(), server.Client(), server.URL, "", map[string]string{"q": "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Value != 42 {
		t.Errorf("expected 42, got %d", out.Value)
	}
	if gotBody["q"] != "x" {
		t.Errorf("expected request body to be forwarded, got %v", gotBody)
	}
}

func TestDoPostSync_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"message":"slow down"}}`)
	}))
	defer server.Close()

	res, _, err := DoPostSync[valueResponse](context.Background(), server.Client(), server.URL, "", struct{}{})

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %T: %v", err, err)
	}
	if statusErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", statusErr.StatusCode)
	}
	if statusErr.Body != `{"error":{"message":"slow down"}}` {
		t.Errorf("expected verbatim body, got %q", statusErr.Body)
	}
	if res == nil {
		t.Error("expected response to be returned with the status error")
	}
}

func TestDoPostSync_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>oops</html>`)
	}))
	defer server.Close()

	_, _, err := DoPostSync[valueResponse](context.Background(), server.Client(), server.URL, "", struct{}{})

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *DecodeError, got %T: %v", err, err)
	}
	if decodeErr.Preview != "<html>oops</html>" {
		t.Errorf("unexpected preview %q", decodeErr.Preview)
	}
}

func TestDoPostSync_Headers(t *testing.T) {
	var auth, custom string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		custom = r.Header.Get("x-goog-api-key")
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	_, _, err := DoPostSync[valueResponse](context.Background(), server.Client(), server.URL, "k1", struct{}{},
		HeaderOption{Key: "x-goog-api-key", Value: "k2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if auth != "Bearer k1" {
		t.Errorf("expected bearer header, got %q", auth)
	}
	if custom != "k2" {
		t.Errorf("expected custom header, got %q", custom)
	}
}

func TestDoPostSync_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, _, err := DoPostSync[valueResponse](context.Background(), nil, url, "", struct{}{})
	if err == nil {
		t.Fatal("expected error for closed server")
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		t.Error("transport failure must not be reported as a status error")
	}
}

func TestDoPostSync_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := DoPostSync[valueResponse](ctx, nil, "http://127.0.0.1:1", "", struct{}{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
