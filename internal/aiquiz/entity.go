package aiquiz

import "errors"

const (
	MinQuestions = 1
	MaxQuestions = 5

	InvalidRequestDetail = "Topic is required and number of questions must be between 1 and 5"
	HealthMessage        = "Quiz Generator API is running"
)

var (
	ErrInvalidRequest   = errors.New("invalid quiz request")
	ErrMalformedRequest = errors.New("malformed request body")
)

type QuizRequest struct {
	Topic        string `json:"topic" example:"photosynthesis"`
	NumQuestions int    `json:"num_questions" example:"3"`
}

func (r QuizRequest) Validate() error {
	if r.Topic == "" || r.NumQuestions < MinQuestions || r.NumQuestions > MaxQuestions {
		return ErrInvalidRequest
	}
	return nil
}

type QuestionsResponse struct {
	Questions []string `json:"questions"`
}

type StatusResponse struct {
	Message string `json:"message" example:"Quiz Generator API is running"`
}
