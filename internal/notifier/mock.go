package notifier

import "sync"

var (
	_ Subscriber = (*Mock)(nil)
	_ Publisher  = (*Mock)(nil)
)

// Mock records every message it receives or is asked to publish.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	ReceiveFunc func(message string)

	// Call records
	Messages []string
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages = nil
}

func (m *Mock) Receive(message string) {
	m.mu.Lock()
	m.Messages = append(m.Messages, message)
	fn := m.ReceiveFunc
	m.mu.Unlock()
	if fn != nil {
		fn(message)
	}
}

// Publish records the message as if it had been delivered.
func (m *Mock) Publish(message string) {
	m.Receive(message)
}

// Received returns a copy of the recorded messages.
func (m *Mock) Received() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Messages...)
}
