package generator

import (
	"context"
	"errors"
	"math"

	openai "github.com/sashabaranov/go-openai"
)

// openaiModel talks to OpenAI or any OpenAI-compatible completion server.
type openaiModel struct {
	client *openai.Client
	model  string
}

func newOpenAIModel(model, apiKey, baseURL string) (*openaiModel, error) {
	if apiKey == "" && baseURL == "" {
		return nil, errors.New("openai API key is required")
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &openaiModel{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}, nil
}

func (m *openaiModel) Generate(ctx context.Context, prompt string, opts Options) ([]Candidate, error) {
	req := openai.ChatCompletionRequest{
		Model: m.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxCompletionTokens: opts.MaxLength,
		Temperature:         float32(opts.Temperature),
		N:                   opts.NumBeams,
	}
	// Temperature is omitempty on the wire; the client library documents
	// SmallestNonzeroFloat32 as the way to request greedy sampling.
	if req.Temperature == 0 {
		req.Temperature = math.SmallestNonzeroFloat32
	}

	resp, err := m.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, &ErrGeneration{Backend: BackendOpenAI, Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &ErrGeneration{Backend: BackendOpenAI, Err: ErrNoCandidates}
	}

	candidates := make([]Candidate, len(resp.Choices))
	for i, choice := range resp.Choices {
		candidates[i] = Candidate{GeneratedText: choice.Message.Content}
	}
	return candidates, nil
}

func (m *openaiModel) ModelID() string {
	return m.model
}
