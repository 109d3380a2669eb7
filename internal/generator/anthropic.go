package generator

import (
	"context"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type anthropicModel struct {
	client *anthropic.Client
	model  string
}

func newAnthropicModel(model, apiKey, baseURL string) (*anthropicModel, error) {
	if apiKey == "" {
		return nil, errors.New("anthropic API key is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	client := anthropic.NewClient(opts...)
	return &anthropicModel{client: &client, model: model}, nil
}

// Generate ignores NumBeams: the Messages API always yields one completion.
func (m *anthropicModel) Generate(ctx context.Context, prompt string, opts Options) ([]Candidate, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(m.model),
		MaxTokens: int64(opts.MaxLength),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
		Temperature: anthropic.Float(opts.Temperature),
	}

	msg, err := m.client.Messages.New(ctx, params)
	if err != nil {
		return nil, &ErrGeneration{Backend: BackendAnthropic, Err: err}
	}

	for _, block := range msg.Content {
		if block.Type == "text" {
			return []Candidate{{GeneratedText: block.Text}}, nil
		}
	}
	return nil, &ErrGeneration{Backend: BackendAnthropic, Err: ErrNoCandidates}
}

func (m *anthropicModel) ModelID() string {
	return m.model
}
