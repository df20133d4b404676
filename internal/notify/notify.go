package notify

import "context"

// Sink accepts "notify recipient" events. Delivery is fire-and-forget from
// the caller's point of view; implementations own retries and logging.
type Sink interface {
	Notify(ctx context.Context, recipientID, content string) error
}
