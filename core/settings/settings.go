// Package settings holds the user-owned repair configuration: which provider
// to use, the configurable provider's endpoint and credentials, and the UI
// theme. The document is read-only input to every repair call.
package settings

import (
	"errors"
	"fmt"
	"strings"
)

// ProviderTag selects a repair provider.
type ProviderTag string

const (
	// ProviderManaged uses the managed-credential provider; its key comes
	// from the environment, never from Settings.
	ProviderManaged ProviderTag = "GEMINI"
	// ProviderOpenAI uses an OpenAI-compatible chat completions endpoint
	// configured in Settings.OpenAI.
	ProviderOpenAI ProviderTag = "OPENAI"
)

// ParseProviderTag accepts the stored tag or a friendly alias.
func ParseProviderTag(s string) (ProviderTag, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "GEMINI", "MANAGED":
		return ProviderManaged, nil
	case "OPENAI":
		return ProviderOpenAI, nil
	default:
		return "", fmt.Errorf("%w: unknown provider %q", ErrInvalid, s)
	}
}

// SuggestedOpenAIBaseURL is offered as a hint when configuring the OpenAI
// provider. It is not applied automatically.
const SuggestedOpenAIBaseURL = "https://api.openai.com/v1"

// ErrInvalid marks a settings document that cannot be used.
var ErrInvalid = errors.New("invalid settings")

// OpenAIConfig configures the OpenAI-compatible provider.
type OpenAIConfig struct {
	BaseURL string `json:"baseUrl"`
	APIKey  string `json:"apiKey"`
	Model   string `json:"model"`
}

// Theme is the display theme chosen by the user.
type Theme struct {
	Name        string `json:"name"`
	ClassPrefix string `json:"classPrefix"`
}

// Themes lists the built-in themes. The first one is the default.
var Themes = []Theme{
	{Name: "Midnight", ClassPrefix: "midnight"},
	{Name: "Cloud", ClassPrefix: "cloud"},
	{Name: "Ocean", ClassPrefix: "ocean"},
	{Name: "Grass", ClassPrefix: "grass"},
	{Name: "Cherry", ClassPrefix: "cherry"},
	{Name: "Citrus", ClassPrefix: "citrus"},
	{Name: "Lavender", ClassPrefix: "lavender"},
}

// ThemeByPrefix looks up a built-in theme.
func ThemeByPrefix(prefix string) (Theme, bool) {
	for _, t := range Themes {
		if t.ClassPrefix == prefix {
			return t, true
		}
	}
	return Theme{}, false
}

// Settings is the persisted configuration document.
type Settings struct {
	Provider ProviderTag  `json:"provider"`
	OpenAI   OpenAIConfig `json:"openAi"`
	Theme    Theme        `json:"theme"`
}

// Default returns the managed provider with an empty OpenAI configuration
// and the first built-in theme.
func Default() Settings {
	return Settings{
		Provider: ProviderManaged,
		Theme:    Themes[0],
	}
}

// Validate checks the provider tag and, for the OpenAI provider, that an
// endpoint and key are present.
func (s Settings) Validate() error {
	switch s.Provider {
	case ProviderManaged:
		return nil
	case ProviderOpenAI:
		if strings.TrimSpace(s.OpenAI.BaseURL) == "" {
			return fmt.Errorf("%w: openAi.baseUrl is required", ErrInvalid)
		}
		if strings.TrimSpace(s.OpenAI.APIKey) == "" {
			return fmt.Errorf("%w: openAi.apiKey is required", ErrInvalid)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown provider %q", ErrInvalid, s.Provider)
	}
}

// withDefaults fills parts that older documents may lack.
func (s Settings) withDefaults() Settings {
	if s.Provider == "" {
		s.Provider = ProviderManaged
	}
	if s.Theme.ClassPrefix == "" {
		s.Theme = Themes[0]
	}
	return s
}
