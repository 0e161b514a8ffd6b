package webhook

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/dispatch_feed_sync/internal/models"
)

const (
	webhookQueueKey = "incident_change_events"
)

// RedisWebhookPublisher - реализация service.EventPublisher, складывающая события в очередь Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish кладет события цикла в очередь одной командой, сохраняя их порядок
func (p *RedisWebhookPublisher) Publish(ctx context.Context, events []models.ChangeEvent) error {
	if len(events) == 0 {
		return nil
	}

	payloads := make([]any, 0, len(events))
	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to marshal change event: %w", err)
		}
		payloads = append(payloads, payload)
	}

	// LPUSH слева, воркер забирает справа через BRPOP
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payloads...).Err(); err != nil {
		return fmt.Errorf("failed to publish change events to Redis: %w", err)
	}
	return nil
}
