package aiquiz_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saulo-duarte/quizgen-api/internal/aiquiz"
	"github.com/saulo-duarte/quizgen-api/internal/config"
	"github.com/saulo-duarte/quizgen-api/internal/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoutes(model generator.Model) http.Handler {
	c := aiquiz.NewAIQuizContainer(model, generator.DefaultOptions())
	return aiquiz.Routes(c.Handler)
}

func postQuestions(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/generate-questions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp config.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Detail
}

func TestHealth(t *testing.T) {
	h := newTestRoutes(generator.NewMock())

	for range 2 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Quiz Generator API is running"}`, rec.Body.String())
	}
}

func TestGenerateQuestionsHandlerSuccess(t *testing.T) {
	model := generator.NewMock()
	rec := postQuestions(t, newTestRoutes(model), `{"topic":"astronomy","num_questions":3}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp aiquiz.QuestionsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Questions, 3)
	for _, q := range resp.Questions {
		assert.Equal(t, generator.MockCompletion, q)
	}
}

func TestGenerateQuestionsHandlerIntegralCount(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"IntegralFloat", `{"topic":"astronomy","num_questions":3.0}`, 3},
		{"Exponent", `{"topic":"astronomy","num_questions":2e0}`, 2},
		{"DigitString", `{"topic":"astronomy","num_questions":"3"}`, 3},
		{"SignedDigitString", `{"topic":"astronomy","num_questions":"+4"}`, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := generator.NewMock()
			rec := postQuestions(t, newTestRoutes(model), tt.body)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			var resp aiquiz.QuestionsResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Len(t, resp.Questions, tt.want)
			assert.Len(t, model.Calls(), tt.want)
		})
	}
}

func TestGenerateQuestionsHandlerValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"ZeroQuestions", `{"topic":"astronomy","num_questions":0}`},
		{"SixQuestions", `{"topic":"astronomy","num_questions":6}`},
		{"EmptyTopic", `{"topic":"","num_questions":2}`},
		{"MissingTopic", `{"num_questions":2}`},
		{"MissingCount", `{"topic":"astronomy"}`},
		{"EmptyObject", `{}`},
		{"SixAsString", `{"topic":"astronomy","num_questions":"6"}`},
		{"ZeroAsFloat", `{"topic":"astronomy","num_questions":0.0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := generator.NewMock()
			rec := postQuestions(t, newTestRoutes(model), tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, aiquiz.InvalidRequestDetail, decodeDetail(t, rec))
			assert.Empty(t, model.Calls())
		})
	}
}

func TestGenerateQuestionsHandlerMalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"NotJSON", `topic=astronomy`},
		{"Empty", ``},
		{"Array", `[]`},
		{"TopicNotString", `{"topic":42,"num_questions":2}`},
		{"CountNotInteger", `{"topic":"astronomy","num_questions":"two"}`},
		{"CountFractional", `{"topic":"astronomy","num_questions":2.5}`},
		{"NullTopic", `{"topic":null,"num_questions":2}`},
		{"CountFractionalString", `{"topic":"astronomy","num_questions":"2.5"}`},
		{"CountNull", `{"topic":"astronomy","num_questions":null}`},
		{"CountBool", `{"topic":"astronomy","num_questions":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := generator.NewMock()
			rec := postQuestions(t, newTestRoutes(model), tt.body)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.NotEmpty(t, decodeDetail(t, rec))
			assert.Empty(t, model.Calls())
		})
	}
}

func TestGenerateQuestionsHandlerModelFailure(t *testing.T) {
	model := generator.NewMock(
		generator.MockResponse{Text: wellFormed},
		generator.MockResponse{Err: errors.New("CUDA out of memory")},
	)
	rec := postQuestions(t, newTestRoutes(model), `{"topic":"astronomy","num_questions":4}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := rec.Body.String()
	assert.NotContains(t, body, `"questions":`)

	var resp config.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.True(t, strings.HasPrefix(resp.Detail, "Error generating questions: "))
	assert.Contains(t, resp.Detail, "CUDA out of memory")
}
