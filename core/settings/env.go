package settings

import (
	"errors"
	"fmt"

	"github.com/joeshaw/envdecode"
)

type envOverlay struct {
	Provider      string `env:"JSONALCHEMIST_PROVIDER"`
	OpenAIBaseURL string `env:"JSONALCHEMIST_OPENAI_BASE_URL"`
	OpenAIAPIKey  string `env:"JSONALCHEMIST_OPENAI_API_KEY"`
	OpenAIModel   string `env:"JSONALCHEMIST_OPENAI_MODEL"`
}

// FromEnv returns base with any JSONALCHEMIST_* variables applied on top.
// Unset variables leave the corresponding field alone.
func FromEnv(base Settings) (Settings, error) {
	var env envOverlay
	if err := envdecode.Decode(&env); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return base, fmt.Errorf("decoding settings from environment: %w", err)
	}

	if env.Provider != "" {
		tag, err := ParseProviderTag(env.Provider)
		if err != nil {
			return base, err
		}
		base.Provider = tag
	}
	if env.OpenAIBaseURL != "" {
		base.OpenAI.BaseURL = env.OpenAIBaseURL
	}
	if env.OpenAIAPIKey != "" {
		base.OpenAI.APIKey = env.OpenAIAPIKey
	}
	if env.OpenAIModel != "" {
		base.OpenAI.Model = env.OpenAIModel
	}
	return base, nil
}
