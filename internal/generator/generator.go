package generator

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNoCandidates   = errors.New("model returned no candidates")
	ErrUnknownBackend = errors.New("unknown model backend")
)

// Model is a loaded text generation model. It is created once at startup
// and shared read-only between requests.
type Model interface {
	Generate(ctx context.Context, prompt string, opts Options) ([]Candidate, error)
	ModelID() string
}

type Candidate struct {
	GeneratedText string
}

// Options holds the decoding parameters sent with every prompt.
type Options struct {
	MaxLength   int
	NumBeams    int
	Temperature float64
}

func DefaultOptions() Options {
	return Options{
		MaxLength:   150,
		NumBeams:    5,
		Temperature: 0.7,
	}
}

// ErrGeneration wraps a failure reported by a model backend.
type ErrGeneration struct {
	Backend string
	Err     error
}

func (e *ErrGeneration) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Backend, e.Err)
}

func (e *ErrGeneration) Unwrap() error { return e.Err }

// FirstText returns the generated text of the first candidate.
func FirstText(candidates []Candidate) (string, error) {
	if len(candidates) == 0 {
		return "", ErrNoCandidates
	}
	return candidates[0].GeneratedText, nil
}
