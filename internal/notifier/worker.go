package notifier

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/sos_dispatch_system/internal/config"
	"github.com/sirupsen/logrus"
)

// NotificationWorker - доставка событий закрепления внешнему вебхуку.
// Сам канал доставки (push, SMS, голос) живет за вебхуком и вне ядра.
type NotificationWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewNotificationWorker создает новый NotificationWorker
func NewNotificationWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *NotificationWorker {
	return &NotificationWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.NotifyWebhookTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди событий закрепления
func (w *NotificationWorker) Start(ctx context.Context) {
	w.logger.Info("Starting notification worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping notification worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части списка (очереди)
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, claimQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, но не ошибка Redis
					}
					w.logger.WithError(err).Error("Failed to pop claim event from Redis")
					time.Sleep(w.cfg.NotifyWebhookTimeout) // Ждем перед повторной попыткой
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var event ClaimEvent
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal claim event from Redis")
					continue
				}

				w.deliverClaimEvent(ctx, event, payload)
			}
		}
	}()
}

func (w *NotificationWorker) deliverClaimEvent(ctx context.Context, event ClaimEvent, rawPayload string) {
	log := w.logger.WithField("sos_id", event.SOSID).WithField("helper_id", event.HelperID)
	log.Debug("Delivering claim notification...")

	if w.cfg.NotifyWebhookURL == "" {
		log.Warn("Notification webhook URL is not configured. Skipping delivery.")
		return
	}

	maxRetries := w.cfg.NotifyMaxRetries
	baseDelay := w.cfg.NotifyBaseDelay

	for i := 0; i < maxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, "POST", w.cfg.NotifyWebhookURL, bytes.NewBufferString(rawPayload))
		if err != nil {
			log.WithError(err).Errorf("Failed to create notification request. Retries left: %d", maxRetries-1-i)
			continue
		}

		req.Header.Set("Content-Type", "application/json")

		// Добавляем HMAC подпись, если NOTIFY_WEBHOOK_SECRET задан
		if w.cfg.NotifyWebhookSecret != "" {
			signature := generateHMACSHA256(rawPayload, w.cfg.NotifyWebhookSecret)
			req.Header.Set("X-Webhook-Signature", signature)
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warnf("Failed to send claim notification. Retrying in %v. Retries left: %d", baseDelay, maxRetries-1-i)
			time.Sleep(baseDelay)
			baseDelay *= 2 // Экспоненциальная задержка
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Info("Claim notification delivered successfully.")
			return
		}

		log.Warnf("Claim notification failed with status code %d. Retrying in %v. Retries left: %d", resp.StatusCode, baseDelay, maxRetries-1-i)
		time.Sleep(baseDelay)
		baseDelay *= 2 // Экспоненциальная задержка
	}

	log.Errorf("Failed to deliver claim notification after %d retries.", maxRetries)
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
