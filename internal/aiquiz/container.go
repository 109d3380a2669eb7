package aiquiz

import "github.com/saulo-duarte/quizgen-api/internal/generator"

type AIQuizContainer struct {
	Handler *Handler
	Service Service
}

func NewAIQuizContainer(model generator.Model, opts generator.Options) *AIQuizContainer {
	service := NewService(model, opts)
	handler := NewHandler(service)

	return &AIQuizContainer{
		Handler: handler,
		Service: service,
	}
}
