package generator

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/quizgen-api/internal/config"
)

const (
	BackendGemini    = "gemini"
	BackendOpenAI    = "openai"
	BackendAnthropic = "anthropic"
	BackendMock      = "mock"
)

var defaultModels = map[string]string{
	BackendGemini:    "gemini-2.0-flash",
	BackendOpenAI:    "gpt-4o-mini",
	BackendAnthropic: "claude-haiku-4-5-20251001",
	BackendMock:      "mock",
}

// Config selects and authenticates a backend.
type Config struct {
	Backend string
	Model   string
	APIKey  string
	BaseURL string
}

func ConfigFromSettings(s config.ModelSettings) Config {
	return Config{
		Backend: s.Provider,
		Model:   s.Name,
		APIKey:  s.APIKey,
		BaseURL: s.BaseURL,
	}
}

// Load builds the process-wide model handle. It is meant to be called once
// during startup.
func Load(ctx context.Context, cfg Config) (Model, error) {
	log := config.WithContext(ctx)

	name := cfg.Model
	if name == "" {
		name = defaultModels[cfg.Backend]
	}

	var (
		m   Model
		err error
	)
	switch cfg.Backend {
	case BackendGemini:
		m, err = newGeminiModel(ctx, name, cfg.APIKey, cfg.BaseURL)
	case BackendOpenAI:
		m, err = newOpenAIModel(name, cfg.APIKey, cfg.BaseURL)
	case BackendAnthropic:
		m, err = newAnthropicModel(name, cfg.APIKey, cfg.BaseURL)
	case BackendMock:
		m = NewMock()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s model: %w", cfg.Backend, err)
	}

	log.WithField("backend", cfg.Backend).Infof("Model %s loaded", m.ModelID())
	return m, nil
}
