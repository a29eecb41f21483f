package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const claimQueueKey = "sos_claim_events"

// ClaimEvent - событие успешного закрепления SOS-запроса за помощником.
// Публикуется ровно один раз на каждый удавшийся claim и передается
// внешнему коллаборатору, который владеет доставкой push/SMS/звонка.
type ClaimEvent struct {
	SOSID       uuid.UUID `json:"sos_id"`
	RequesterID uuid.UUID `json:"requester_id"`
	HelperID    uuid.UUID `json:"helper_id"`
	Type        string    `json:"type"`
	AssignedAt  time.Time `json:"assigned_at"`
}

// NotificationPublisher - интерфейс публикации событий закрепления
type NotificationPublisher interface {
	Publish(ctx context.Context, event ClaimEvent) error
}

// RedisNotificationPublisher - реализация NotificationPublisher, использующая Redis
type RedisNotificationPublisher struct {
	redisClient *redis.Client
}

// NewRedisNotificationPublisher создает новый RedisNotificationPublisher
func NewRedisNotificationPublisher(client *redis.Client) *RedisNotificationPublisher {
	return &RedisNotificationPublisher{
		redisClient: client,
	}
}

// Publish кладет событие закрепления в очередь Redis
func (p *RedisNotificationPublisher) Publish(ctx context.Context, event ClaimEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal claim event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, claimQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish claim event to Redis: %w", err)
	}
	return nil
}
