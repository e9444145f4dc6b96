package notify

import (
	"time"

	"github.com/google/uuid"
)

// Event types as constants
const (
	EventEmptySearch    = "search.empty"
	EventStorageFailure = "storage.failure"
)

// Notification is an informational, non-blocking message for the user.
// Nothing in the stores waits on its delivery.
type Notification struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Title     string    `json:"title"`
	Detail    string    `json:"detail"`
	Timestamp time.Time `json:"timestamp"`
}

// New stamps a notification with a fresh event id and timestamp.
func New(eventType, title, detail string) Notification {
	return Notification{
		EventID:   uuid.New().String(),
		EventType: eventType,
		Title:     title,
		Detail:    detail,
		Timestamp: time.Now(),
	}
}
