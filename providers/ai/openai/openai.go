package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/leofalp/jsonalchemist/core/repair"
	"github.com/leofalp/jsonalchemist/core/settings"
	"github.com/leofalp/jsonalchemist/internal/utils"
	"github.com/leofalp/jsonalchemist/providers/observability"
)

const (
	providerName            = "openai"
	defaultModel            = "gpt-3.5-turbo"
	chatCompletionsEndpoint = "/chat/completions"
	contentPath             = "choices.0.message.content"
)

// OpenAIProvider implements repair.Provider for OpenAI-compatible APIs.
type OpenAIProvider struct {
	client *http.Client
}

var _ repair.Provider = (*OpenAIProvider)(nil)

// New creates the provider. Endpoint and credentials are taken from the
// settings passed to each Repair call.
func New() *OpenAIProvider {
	return &OpenAIProvider{client: &http.Client{}}
}

// WithHttpClient sets a custom HTTP client.
func (p *OpenAIProvider) WithHttpClient(httpClient *http.Client) *OpenAIProvider {
	p.client = httpClient
	return p
}

func (p *OpenAIProvider) Name() string { return providerName }

// Endpoint returns the chat completions URL for a base URL, dropping one
// trailing slash.
func Endpoint(baseURL string) string {
	return strings.TrimSuffix(baseURL, "/") + chatCompletionsEndpoint
}

// Repair sends text to cfg.OpenAI's endpoint. An empty model falls back to
// gpt-3.5-turbo.
func (p *OpenAIProvider) Repair(ctx context.Context, text string, cfg settings.Settings) (string, error) {
	requestID := uuid.NewString()
	start := time.Now()

	model := cfg.OpenAI.Model
	if model == "" {
		model = defaultModel
	}

	observer := observability.ObserverFromContext(ctx)
	var span observability.Span
	if observer != nil {
		ctx, span = observer.StartSpan(ctx, observability.SpanRepair,
			observability.String(observability.AttrRepairProvider, providerName),
			observability.String(observability.AttrRepairModel, model),
			observability.String(observability.AttrRepairEndpoint, Endpoint(cfg.OpenAI.BaseURL)),
			observability.String(observability.AttrRepairRequestID, requestID),
			observability.Int(observability.AttrInputSize, len(text)),
		)
		defer span.End()
	}

	out, err := p.repair(ctx, text, cfg.OpenAI, model, requestID)

	if observer != nil {
		status := "ok"
		if err != nil {
			status = "error"
			span.RecordError(err)
			span.SetStatus(observability.StatusError, err.Error())
			observer.Warn(ctx, "openai repair failed",
				observability.String(observability.AttrRepairRequestID, requestID),
				observability.Error(err),
			)
		} else {
			span.SetStatus(observability.StatusOK, "")
		}
		attrs := []observability.Attribute{
			observability.String(observability.AttrRepairProvider, providerName),
			observability.String(observability.AttrStatus, status),
		}
		observer.Counter(observability.MetricRepairCount).Add(ctx, 1, attrs...)
		observer.Histogram(observability.MetricRepairDuration).Record(ctx, time.Since(start).Seconds(), attrs...)
	}
	return out, err
}

func (p *OpenAIProvider) repair(ctx context.Context, text string, cfg settings.OpenAIConfig, model, requestID string) (string, error) {
	if cfg.APIKey == "" {
		return "", &repair.ConfigError{Provider: providerName, Msg: "API Key is required for Custom AI provider"}
	}
	if cfg.BaseURL == "" {
		return "", &repair.ConfigError{Provider: providerName, Msg: "Base URL is required for Custom AI provider"}
	}

	body := chatCompletionRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: repair.Instructions},
			{Role: "user", Content: text},
		},
		Temperature: 0,
		Stream:      false,
	}

	_, raw, err := utils.DoPostSync[json.RawMessage](
		ctx,
		p.client,
		Endpoint(cfg.BaseURL),
		cfg.APIKey,
		body,
		utils.HeaderOption{Key: "X-Request-Id", Value: requestID},
	)
	if err != nil {
		return "", classifyError(err)
	}

	content := gjson.GetBytes(*raw, contentPath)
	if content.Type != gjson.String || content.String() == "" {
		return "", &repair.ContentError{Provider: providerName, Msg: "No content received from AI provider"}
	}
	return repair.StripFences(content.String()), nil
}

func classifyError(err error) error {
	var statusErr *utils.StatusError
	if errors.As(err, &statusErr) {
		return &repair.TransportError{Provider: providerName, StatusCode: statusErr.StatusCode, Body: statusErr.Body, Err: err}
	}
	var decodeErr *utils.DecodeError
	if errors.As(err, &decodeErr) {
		return &repair.ContentError{Provider: providerName, Msg: "unreadable response", Err: err}
	}
	return &repair.TransportError{Provider: providerName, Err: err}
}
