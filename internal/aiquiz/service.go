package aiquiz

import (
	"context"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quizgen-api/internal/config"
	"github.com/saulo-duarte/quizgen-api/internal/generator"
	"github.com/sirupsen/logrus"
)

type Service interface {
	GenerateQuestions(ctx context.Context, req QuizRequest) ([]string, error)
}

type service struct {
	model generator.Model
	opts  generator.Options
}

func NewService(model generator.Model, opts generator.Options) Service {
	return &service{model: model, opts: opts}
}

// GenerateQuestions asks the model for one question at a time. The first
// failure aborts the batch and nothing generated so far is returned.
func (s *service) GenerateQuestions(ctx context.Context, req QuizRequest) ([]string, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"batch_id":      uuid.NewString(),
		"topic":         req.Topic,
		"num_questions": req.NumQuestions,
		"model":         s.model.ModelID(),
	})
	log.Info("Generating questions")

	questions := make([]string, 0, req.NumQuestions)
	for i := range req.NumQuestions {
		candidates, err := s.model.Generate(ctx, BuildPrompt(req.Topic), s.opts)
		if err != nil {
			log.WithError(err).Errorf("Generation failed at question %d", i+1)
			return nil, err
		}

		raw, err := generator.FirstText(candidates)
		if err != nil {
			log.WithError(err).Errorf("Empty generation at question %d", i+1)
			return nil, err
		}
		log.Debugf("Raw model output for question %d:\n%s", i+1, raw)

		questions = append(questions, FormatQuestion(raw))
	}

	log.Infof("Generated %d questions", len(questions))
	return questions, nil
}
