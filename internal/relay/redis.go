package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/sos_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

const channelPattern = "sos:*"

func channelKey(sosID uuid.UUID) string {
	return fmt.Sprintf("sos:%s", sosID.String())
}

// RedisRelay - реле поверх Redis Pub/Sub. Публикации сериализуются через
// Redis-канал sos:{id}, фоновая горутина раскладывает их по локальным
// подписчикам хаба. Порядок внутри одного канала сохраняется, между
// каналами порядок не гарантируется.
type RedisRelay struct {
	redisClient *redis.Client
	hub         *Hub
	logger      *logrus.Logger
}

func NewRedisRelay(redisClient *redis.Client, hub *Hub, logger *logrus.Logger) *RedisRelay {
	return &RedisRelay{
		redisClient: redisClient,
		hub:         hub,
		logger:      logger,
	}
}

// Hub возвращает локальный хаб подписчиков
func (r *RedisRelay) Hub() *Hub {
	return r.hub
}

// Start запускает горутину, транслирующую события из Redis в хаб
func (r *RedisRelay) Start(ctx context.Context) {
	r.logger.Info("Starting relay subscriber...")
	pubsub := r.redisClient.PSubscribe(ctx, channelPattern)

	go func() {
		defer pubsub.Close()
		for {
			select {
			case <-ctx.Done():
				r.logger.Info("Stopping relay subscriber.")
				return
			case msg, ok := <-pubsub.Channel():
				if !ok {
					return
				}
				var ev Event
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					r.logger.WithError(err).Error("Failed to unmarshal relay event from Redis")
					continue
				}
				r.hub.Broadcast(ev)
			}
		}
	}()
}

// PublishLocation рассылает замер позиции подписчикам канала SOS-запроса.
// Некорректный вход молча отбрасывается: доставка замеров best-effort,
// отправителю ошибка не возвращается. Событие штампуется временем приема.
func (r *RedisRelay) PublishLocation(ctx context.Context, sosID uuid.UUID, lat, lng float64) {
	if sosID == uuid.Nil || !models.ValidCoordinates(lat, lng) {
		r.logger.WithField("sos_id", sosID).Debug("Dropping invalid location sample")
		return
	}

	r.publish(ctx, Event{
		Event:     EventLocationUpdate,
		SOSID:     sosID,
		Latitude:  lat,
		Longitude: lng,
		At:        time.Now().UTC(),
	})
}

// PublishClosed рассылает терминальное событие канала SOS-запроса
func (r *RedisRelay) PublishClosed(ctx context.Context, sosID uuid.UUID) {
	if sosID == uuid.Nil {
		return
	}

	r.publish(ctx, Event{
		Event: EventClosed,
		SOSID: sosID,
		At:    time.Now().UTC(),
	})
}

func (r *RedisRelay) publish(ctx context.Context, ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		r.logger.WithError(err).Error("Failed to marshal relay event")
		return
	}

	if err := r.redisClient.Publish(ctx, channelKey(ev.SOSID), payload).Err(); err != nil {
		// Потерянный замер перекроется следующим, ошибку наружу не отдаем
		r.logger.WithError(err).WithField("sos_id", ev.SOSID).Error("Failed to publish relay event to Redis")
	}
}
