package inngest

import (
	"context"
	"net/http"
	"sync"
)

var _ InngestClient = (*MockInngestClient)(nil)

// MockInngestClient is a mock implementation of InngestClient for testing.
// It is safe for concurrent use.
type MockInngestClient struct {
	mu sync.Mutex

	// Spies for method calls
	SendEventFunc func(ctx context.Context, name string, data map[string]any) error

	// Call records
	SendEventCalls []SendEventCall
}

// SendEventCall holds the arguments for a call to SendEvent.
type SendEventCall struct {
	Name string
	Data map[string]any
}

// NewMock creates a new mock InngestClient.
func NewMock() *MockInngestClient {
	return &MockInngestClient{}
}

func (m *MockInngestClient) Serve() http.Handler {
	return http.NotFoundHandler()
}

func (m *MockInngestClient) SendEvent(ctx context.Context, name string, data map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendEventCalls = append(m.SendEventCalls, SendEventCall{Name: name, Data: data})
	if m.SendEventFunc != nil {
		return m.SendEventFunc(ctx, name, data)
	}
	return nil
}
