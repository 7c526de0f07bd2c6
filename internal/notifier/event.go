package notifier

import (
	"time"

	"github.com/google/uuid"
)

// Event is the envelope forwarders send to external systems.
type Event struct {
	ID         string    `json:"id" msgpack:"id"`
	Message    string    `json:"message" msgpack:"message"`
	OccurredAt time.Time `json:"occurred_at" msgpack:"occurred_at"`
}

// NewEvent wraps a bus message with a fresh identifier and timestamp.
func NewEvent(message string) Event {
	return Event{
		ID:         uuid.NewString(),
		Message:    message,
		OccurredAt: time.Now().UTC(),
	}
}
