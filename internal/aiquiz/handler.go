package aiquiz

import (
	"errors"
	"io"
	"net/http"

	"github.com/saulo-duarte/quizgen-api/internal/config"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// Health godoc
// @Summary     Liveness check
// @Tags        health
// @Produce     json
// @Success     200 {object} StatusResponse
// @Router      / [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, StatusResponse{Message: HealthMessage})
}

// GenerateQuestions godoc
// @Summary     Generate multiple-choice questions about a topic
// @Tags        questions
// @Accept      json
// @Produce     json
// @Param       request body     QuizRequest true "Topic and number of questions (1-5)"
// @Success     200     {object} QuestionsResponse
// @Failure     400     {object} config.ErrorResponse
// @Failure     422     {object} config.ErrorResponse
// @Failure     500     {object} config.ErrorResponse
// @Router      /generate-questions [post]
func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		log.WithError(err).Warn("Failed to read request body")
		config.Error(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	req, err := decodeQuizRequest(body)
	if err != nil {
		log.WithError(err).Warn("Invalid request body")
		config.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	questions, err := h.service.GenerateQuestions(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			config.Error(w, http.StatusBadRequest, InvalidRequestDetail)
			return
		}
		log.WithError(err).Error("Failed to generate questions")
		config.Error(w, http.StatusInternalServerError, "Error generating questions: "+err.Error())
		return
	}

	config.JSON(w, http.StatusOK, QuestionsResponse{Questions: questions})
}
