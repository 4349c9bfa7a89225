package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/leofalp/jsonalchemist/providers/observability"
)

// HeaderOption is an extra request header.
type HeaderOption struct {
	Key   string
	Value string
}

// StatusError is returned for a non-2xx response. Body is the raw response
// body, unmodified.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("non-2xx status %d: %s", e.StatusCode, e.Body)
}

// DecodeError is returned when a 2xx response body does not unmarshal into
// the expected shape.
type DecodeError struct {
	StatusCode int
	Preview    string
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("error unmarshaling response body (status %d): %v\nResponse preview: %s", e.StatusCode, e.Err, e.Preview)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// DoPostSync sends body as JSON to url and unmarshals the response into
// Output. A non-empty apiKey is sent as a Bearer token; headers are added
// after it and may override it.
//
// Failures:
//   - request construction or transport errors are returned wrapped
//   - a non-2xx status returns *StatusError together with the response
//   - an undecodable 2xx body returns *DecodeError together with the response
//
// Events are added to the span found in ctx, if any.
func DoPostSync[Output any](ctx context.Context, client *http.Client, url string, apiKey string, body any, headers ...HeaderOption) (*http.Response, *Output, error) {
	span := observability.SpanFromContext(ctx)

	if client == nil {
		client = http.DefaultClient
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, nil, fmt.Errorf("error marshaling body: %w", err)
	}

	if span != nil {
		span.AddEvent(observability.EventHTTPPrepared,
			observability.String(observability.AttrHTTPMethod, http.MethodPost),
			observability.String(observability.AttrHTTPURL, url),
			observability.Int(observability.AttrHTTPRequestBodySize, len(payload)),
		)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}
	for _, h := range headers {
		req.Header.Set(h.Key, h.Value)
	}

	start := time.Now()
	res, err := client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		if span != nil {
			span.AddEvent(observability.EventHTTPError,
				observability.Error(err),
				observability.Duration(observability.AttrHTTPDuration, elapsed),
			)
		}
		return nil, nil, fmt.Errorf("error sending request: %w", err)
	}
	defer func() {
		if closeErr := res.Body.Close(); closeErr != nil {
			slog.Warn("failed to close response body", "error", closeErr.Error(), "url", url)
		}
	}()

	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		return res, nil, fmt.Errorf("error reading response body: %w", err)
	}

	if span != nil {
		span.AddEvent(observability.EventHTTPResponse,
			observability.Int(observability.AttrHTTPStatusCode, res.StatusCode),
			observability.Int(observability.AttrHTTPResponseBodySize, len(respBody)),
			observability.Duration(observability.AttrHTTPDuration, elapsed),
		)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return res, nil, &StatusError{StatusCode: res.StatusCode, Status: res.Status, Body: string(respBody)}
	}

	var out Output
	if err := json.Unmarshal(respBody, &out); err != nil {
		return res, nil, &DecodeError{
			StatusCode: res.StatusCode,
			Preview:    TruncateStringDefault(string(respBody)),
			Err:        err,
		}
	}
	return res, &out, nil
}
