package container

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/quizgen-api/internal/aiquiz"
	"github.com/saulo-duarte/quizgen-api/internal/config"
	"github.com/saulo-duarte/quizgen-api/internal/generator"
)

type Container struct {
	Settings        *config.Settings
	Model           generator.Model
	AIQuizContainer *aiquiz.AIQuizContainer
}

// New initializes logging and loads the model. The returned container owns
// the only model handle of the process.
func New(ctx context.Context, settings *config.Settings) (*Container, error) {
	if err := config.Init(settings.LogLevel); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	model, err := generator.Load(ctx, generator.ConfigFromSettings(settings.Model))
	if err != nil {
		return nil, err
	}

	opts := generator.Options{
		MaxLength:   settings.Model.MaxLength,
		NumBeams:    settings.Model.NumBeams,
		Temperature: settings.Model.Temperature,
	}

	return &Container{
		Settings:        settings,
		Model:           model,
		AIQuizContainer: aiquiz.NewAIQuizContainer(model, opts),
	}, nil
}
