package llm

import (
	"context"
	"sync"
)

// MockClient permite tests sin llamar a un LLM real.
// Si Handler esta definido tiene prioridad sobre Response/Err.
type MockClient struct {
	Response string
	Err      error
	Handler  func(req ChatRequest) (string, error)

	mu    sync.Mutex
	calls []ChatRequest
}

func (m *MockClient) Complete(ctx context.Context, req ChatRequest) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.Handler != nil {
		return m.Handler(req)
	}
	return m.Response, m.Err
}

// Calls devuelve una copia de los requests recibidos.
func (m *MockClient) Calls() []ChatRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ChatRequest, len(m.calls))
	copy(out, m.calls)
	return out
}

// MockVisionClient es el equivalente para VisionClient.
type MockVisionClient struct {
	Response string
	Err      error

	mu   sync.Mutex
	last VisionRequest
}

func (m *MockVisionClient) DescribeImage(ctx context.Context, req VisionRequest) (string, error) {
	m.mu.Lock()
	m.last = req
	m.mu.Unlock()
	return m.Response, m.Err
}

// LastRequest devuelve el ultimo request recibido.
func (m *MockVisionClient) LastRequest() VisionRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}
