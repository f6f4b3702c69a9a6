package repository

import "context"

// WebhookEventRepository records processed webhook event ids so replayed
// deliveries can be rejected.
type WebhookEventRepository interface {
	// MarkProcessed records the event id and reports whether this call was
	// the first to do so. A false result means the event was seen before.
	MarkProcessed(ctx context.Context, eventID string) (bool, error)

	// ClearProcessed forgets a previously marked event id so the provider's
	// retry of a failed delivery is not rejected as a replay.
	ClearProcessed(ctx context.Context, eventID string) error
}
