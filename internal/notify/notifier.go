package notify

import "context"

// Publisher is the contract for surfacing non-blocking user notifications.
// This allows for easy mocking in tests.
type Publisher interface {
	Publish(ctx context.Context, n Notification)
}

// Ensure LogPublisher implements Publisher
var _ Publisher = (*LogPublisher)(nil)
