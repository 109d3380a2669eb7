package generator

import (
	"context"
	"sync"
)

// MockCompletion is what the mock backend answers once its queue is empty.
const MockCompletion = "Question: Which planet is known as the Red Planet?\n" +
	"A) Venus\nB) Mars\nC) Jupiter\nD) Saturn\nCorrect Answer: B) Mars"

type MockResponse struct {
	Text string
	Err  error
}

type MockCall struct {
	Prompt  string
	Options Options
}

// Mock is a deterministic Model. It replays queued responses in FIFO order,
// then answers MockCompletion, and records every call.
type Mock struct {
	mu        sync.Mutex
	responses []MockResponse
	calls     []MockCall
}

func NewMock(responses ...MockResponse) *Mock {
	return &Mock{responses: responses}
}

func (m *Mock) Generate(_ context.Context, prompt string, opts Options) ([]Candidate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, MockCall{Prompt: prompt, Options: opts})

	if len(m.responses) == 0 {
		return []Candidate{{GeneratedText: MockCompletion}}, nil
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]
	if resp.Err != nil {
		return nil, &ErrGeneration{Backend: BackendMock, Err: resp.Err}
	}
	return []Candidate{{GeneratedText: resp.Text}}, nil
}

func (m *Mock) ModelID() string {
	return "mock"
}

func (m *Mock) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockCall, len(m.calls))
	copy(out, m.calls)
	return out
}
