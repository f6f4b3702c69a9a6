package impl

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/devtutor/devtutor-go/internal/domain/repository"
)

const webhookEventKeyPrefix = "webhook:event:"

// webhookEventRepository implements repository.WebhookEventRepository on
// Redis. SETNX gives first-writer-wins semantics across replicas, and the
// TTL bounds memory for the dedup window.
type webhookEventRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewWebhookEventRepository creates a Redis-backed WebhookEventRepository.
func NewWebhookEventRepository(client *redis.Client, ttl time.Duration) repository.WebhookEventRepository {
	return &webhookEventRepository{client: client, ttl: ttl}
}

// MarkProcessed records the event id, reporting whether it was new.
func (r *webhookEventRepository) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	return r.client.SetNX(ctx, webhookEventKeyPrefix+eventID, 1, r.ttl).Result()
}

// ClearProcessed drops the dedup key so the event can be delivered again.
func (r *webhookEventRepository) ClearProcessed(ctx context.Context, eventID string) error {
	return r.client.Del(ctx, webhookEventKeyPrefix+eventID).Err()
}
