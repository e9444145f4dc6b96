package notify

import (
	"context"
	"log"
)

// LogPublisher writes notifications to the service log. The web UI surfaces
// these as toasts; a headless deployment gets them in the log stream instead.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (p *LogPublisher) Publish(_ context.Context, n Notification) {
	log.Printf("notification [%s] %s: %s", n.EventType, n.Title, n.Detail)
}
