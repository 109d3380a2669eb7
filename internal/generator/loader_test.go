package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/saulo-duarte/quizgen-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		cfg     Config
		wantID  string
		wantErr bool
	}{
		{name: "Mock", cfg: Config{Backend: BackendMock}, wantID: "mock"},
		{name: "GeminiDefaultModel", cfg: Config{Backend: BackendGemini, APIKey: "k"}, wantID: "gemini-2.0-flash"},
		{name: "OpenAIDefaultModel", cfg: Config{Backend: BackendOpenAI, APIKey: "k"}, wantID: "gpt-4o-mini"},
		{name: "OpenAICompatibleServer", cfg: Config{Backend: BackendOpenAI, Model: "t5-small", BaseURL: "http://localhost:8000/v1"}, wantID: "t5-small"},
		{name: "AnthropicExplicitModel", cfg: Config{Backend: BackendAnthropic, APIKey: "k", Model: "claude-sonnet-4-20250514"}, wantID: "claude-sonnet-4-20250514"},
		{name: "OpenAIWithoutKey", cfg: Config{Backend: BackendOpenAI}, wantErr: true},
		{name: "AnthropicWithoutKey", cfg: Config{Backend: BackendAnthropic}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Load(ctx, tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, m.ModelID())
		})
	}
}

func TestLoadUnknownBackend(t *testing.T) {
	_, err := Load(context.Background(), Config{Backend: "t5-local"})
	assert.True(t, errors.Is(err, ErrUnknownBackend))
}

func TestConfigFromSettings(t *testing.T) {
	cfg := ConfigFromSettings(config.ModelSettings{
		Provider: "openai",
		Name:     "gpt-4o",
		APIKey:   "sk",
		BaseURL:  "http://x",
	})
	assert.Equal(t, Config{Backend: "openai", Model: "gpt-4o", APIKey: "sk", BaseURL: "http://x"}, cfg)
}

func TestMockReplaysThenFallsBack(t *testing.T) {
	boom := errors.New("boom")
	m := NewMock(MockResponse{Text: "one"}, MockResponse{Err: boom})

	c, err := m.Generate(context.Background(), "p1", DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "one", c[0].GeneratedText)

	_, err = m.Generate(context.Background(), "p2", DefaultOptions())
	assert.ErrorIs(t, err, boom)

	c, err = m.Generate(context.Background(), "p3", DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, MockCompletion, c[0].GeneratedText)

	calls := m.Calls()
	require.Len(t, calls, 3)
	assert.Equal(t, "p2", calls[1].Prompt)
}

func TestFirstTextEmpty(t *testing.T) {
	_, err := FirstText(nil)
	assert.ErrorIs(t, err, ErrNoCandidates)
}
