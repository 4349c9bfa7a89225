package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joeshaw/envdecode"

	"github.com/leofalp/jsonalchemist/core/repair"
	"github.com/leofalp/jsonalchemist/core/settings"
	"github.com/leofalp/jsonalchemist/internal/utils"
	"github.com/leofalp/jsonalchemist/providers/observability"
)

const (
	providerName   = "gemini"
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.5-flash"
)

// Config is the environment the managed provider reads.
type Config struct {
	APIKey         string `env:"GEMINI_API_KEY"`
	FallbackAPIKey string `env:"API_KEY"`
	BaseURL        string `env:"GEMINI_API_BASE_URL"`
	Model          string `env:"GEMINI_MODEL"`
}

// ConfigFromEnv decodes Config from the environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return cfg, fmt.Errorf("decoding gemini environment: %w", err)
	}
	return cfg, nil
}

// GeminiProvider implements repair.Provider with Google's Gemini API.
type GeminiProvider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

var _ repair.Provider = (*GeminiProvider)(nil)

// New builds the provider from the environment:
//   - GEMINI_API_KEY, falling back to API_KEY
//   - GEMINI_API_BASE_URL (optional)
//   - GEMINI_MODEL (optional, defaults to gemini-2.5-flash)
func New() *GeminiProvider {
	cfg, _ := ConfigFromEnv()
	return NewWithConfig(cfg)
}

// NewWithConfig builds the provider from an explicit Config.
func NewWithConfig(cfg Config) *GeminiProvider {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = cfg.FallbackAPIKey
	}
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &GeminiProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{},
	}
}

// WithAPIKey sets the API key.
func (p *GeminiProvider) WithAPIKey(apiKey string) *GeminiProvider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the API base URL.
func (p *GeminiProvider) WithBaseURL(baseURL string) *GeminiProvider {
	p.baseURL = strings.TrimSuffix(baseURL, "/")
	return p
}

// WithModel sets the model name.
func (p *GeminiProvider) WithModel(model string) *GeminiProvider {
	p.model = model
	return p
}

// WithHttpClient sets a custom HTTP client.
func (p *GeminiProvider) WithHttpClient(httpClient *http.Client) *GeminiProvider {
	p.client = httpClient
	return p
}

func (p *GeminiProvider) Name() string { return providerName }

// Repair sends text to generateContent. The settings document is not
// consulted: the managed provider's credential comes from the environment.
func (p *GeminiProvider) Repair(ctx context.Context, text string, _ settings.Settings) (string, error) {
	requestID := uuid.NewString()
	start := time.Now()

	observer := observability.ObserverFromContext(ctx)
	var span observability.Span
	if observer != nil {
		ctx, span = observer.StartSpan(ctx, observability.SpanRepair,
			observability.String(observability.AttrRepairProvider, providerName),
			observability.String(observability.AttrRepairModel, p.model),
			observability.String(observability.AttrRepairEndpoint, p.baseURL),
			observability.String(observability.AttrRepairRequestID, requestID),
			observability.Int(observability.AttrInputSize, len(text)),
		)
		defer span.End()
	}

	out, err := p.repair(ctx, text, requestID)

	if observer != nil {
		status := "ok"
		if err != nil {
			status = "error"
			span.RecordError(err)
			span.SetStatus(observability.StatusError, err.Error())
			observer.Warn(ctx, "gemini repair failed",
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

func (p *GeminiProvider) repair(ctx context.Context, text, requestID string) (string, error) {
	if p.apiKey == "" {
		return "", &repair.ConfigError{Provider: providerName, Msg: "API Key is missing. Please configure the environment."}
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", p.baseURL, p.model)
	_, resp, err := utils.DoPostSync[generateContentResponse](
		ctx,
		p.client,
		url,
		"", // Gemini authenticates with x-goog-api-key, not Bearer
		newRequest(text),
		utils.HeaderOption{Key: "x-goog-api-key", Value: p.apiKey},
		utils.HeaderOption{Key: "X-Request-Id", Value: requestID},
	)
	if err != nil {
		return "", classifyError(err)
	}

	recordUsage(ctx, resp)

	answer, err := extractText(resp)
	if err != nil {
		return "", err
	}
	return repair.StripFences(answer), nil
}

func recordUsage(ctx context.Context, resp *generateContentResponse) {
	span := observability.SpanFromContext(ctx)
	if span == nil || resp == nil {
		return
	}
	if resp.UsageMetadata != nil {
		span.SetAttributes(observability.Int(observability.AttrRepairTokens, resp.UsageMetadata.TotalTokenCount))
	}
	if len(resp.Candidates) > 0 && resp.Candidates[0].FinishReason != "" {
		span.SetAttributes(observability.String(observability.AttrRepairFinish, resp.Candidates[0].FinishReason))
	}
}

func newRequest(text string) generateContentRequest {
	return generateContentRequest{
		SystemInstruction: &systemInstruction{Parts: []part{{Text: repair.Instructions}}},
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: text}},
		}},
		GenerationConfig: &generationConfig{
			Temperature:    ptr(0.0),
			CandidateCount: ptr(1),
			ThinkingConfig: &thinkingConfig{ThinkingBudget: ptr(0)},
		},
	}
}

func extractText(resp *generateContentResponse) (string, error) {
	if resp == nil {
		return "", &repair.ContentError{Provider: providerName, Msg: "empty response"}
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", &repair.ContentError{Provider: providerName, Msg: "prompt blocked: " + resp.PromptFeedback.BlockReason}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", &repair.ContentError{Provider: providerName, Msg: "No response from AI"}
	}

	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p.Thought {
			continue
		}
		b.WriteString(p.Text)
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", &repair.ContentError{Provider: providerName, Msg: "No response from AI"}
	}
	return b.String(), nil
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
