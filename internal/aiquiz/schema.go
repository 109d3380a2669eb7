package aiquiz

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const requestSchemaURL = "schema://quiz-request.json"

// Only types are checked here; missing or out-of-range values are left to
// QuizRequest.Validate so they surface as a 400. num_questions may be an
// integral number (3, 3.0) or a string of digits ("3").
var requestSchemaDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"topic": map[string]any{"type": "string"},
		"num_questions": map[string]any{
			"type":    []any{"integer", "string"},
			"pattern": `^[+-]?[0-9]+$`,
		},
	},
}

// float64 represents every integer exactly up to 2^53.
const maxExactFloatInt = 1 << 53

var errNotInteger = errors.New("value is not a valid integer")

var requestSchema = compileRequestSchema()

func compileRequestSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(requestSchemaURL, requestSchemaDefinition); err != nil {
		panic(fmt.Sprintf("add request schema: %v", err))
	}
	return c.MustCompile(requestSchemaURL)
}

func decodeQuizRequest(body []byte) (QuizRequest, error) {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		return QuizRequest{}, fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}
	if err := requestSchema.Validate(inst); err != nil {
		return QuizRequest{}, fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}

	obj, ok := inst.(map[string]any)
	if !ok {
		return QuizRequest{}, fmt.Errorf("%w: expected a JSON object", ErrMalformedRequest)
	}

	var req QuizRequest
	if topic, ok := obj["topic"].(string); ok {
		req.Topic = topic
	}
	if raw, ok := obj["num_questions"]; ok {
		n, err := toInt(raw)
		if err != nil {
			return QuizRequest{}, fmt.Errorf("%w: num_questions: %v", ErrMalformedRequest, err)
		}
		req.NumQuestions = n
	}
	return req, nil
}

// toInt converts a schema-validated num_questions value. Integral floats
// such as 3.0 are accepted; anything with a fractional part is not.
func toInt(v any) (int, error) {
	var num json.Number
	switch t := v.(type) {
	case json.Number:
		num = t
	case string:
		num = json.Number(t)
	default:
		return 0, errNotInteger
	}

	if i, err := num.Int64(); err == nil {
		if i > math.MaxInt || i < math.MinInt {
			return 0, errNotInteger
		}
		return int(i), nil
	}

	f, err := num.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > maxExactFloatInt {
		return 0, errNotInteger
	}
	return int(f), nil
}
