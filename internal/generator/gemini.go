package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/saulo-duarte/quizgen-api/internal/config"
	"google.golang.org/genai"
)

type geminiModel struct {
	client *genai.Client
	model  string
}

// An empty apiKey lets genai fall back to GOOGLE_API_KEY / GEMINI_API_KEY.
func newGeminiModel(ctx context.Context, model, apiKey, baseURL string) (*geminiModel, error) {
	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return &geminiModel{client: client, model: model}, nil
}

func (m *geminiModel) Generate(ctx context.Context, prompt string, opts Options) ([]Candidate, error) {
	log := config.WithContext(ctx)

	temp := float32(opts.Temperature)
	gc := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(opts.MaxLength),
		CandidateCount:  int32(opts.NumBeams),
		Temperature:     &temp,
	}

	result, err := m.client.Models.GenerateContent(ctx, m.model, genai.Text(prompt), gc)
	if err != nil {
		return nil, &ErrGeneration{Backend: BackendGemini, Err: err}
	}

	candidates := make([]Candidate, 0, len(result.Candidates))
	for _, c := range result.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		var sb strings.Builder
		for _, part := range c.Content.Parts {
			if part != nil {
				sb.WriteString(part.Text)
			}
		}
		candidates = append(candidates, Candidate{GeneratedText: sb.String()})
	}
	log.Debugf("Gemini returned %d candidates", len(candidates))

	if len(candidates) == 0 {
		return nil, &ErrGeneration{Backend: BackendGemini, Err: ErrNoCandidates}
	}
	return candidates, nil
}

func (m *geminiModel) ModelID() string {
	return m.model
}
