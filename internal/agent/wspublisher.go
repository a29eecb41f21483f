package agent

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

type joinMessage struct {
	Event string `json:"event"`
	SOSID string `json:"sos_id"`
}

type locationMessage struct {
	Event     string  `json:"event"`
	SOSID     string  `json:"sos_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// WSPublisher - клиентское подключение помощника к WebSocket-эндпоинту.
// Реализует LocationPublisher: замеры уходят сообщениями helper:location.
// Запись в соединение сериализуется мьютексом.
type WSPublisher struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	logger *logrus.Logger
}

// DialWSPublisher устанавливает соединение с идентичностью пользователя
func DialWSPublisher(ctx context.Context, serverURL string, userID uuid.UUID, logger *logrus.Logger) (*WSPublisher, error) {
	header := http.Header{}
	header.Set("X-User-ID", userID.String())

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, serverURL, header)
	if resp != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to dial relay endpoint: %w", err)
	}

	return &WSPublisher{conn: conn, logger: logger}, nil
}

// Join подписывает подключение на канал SOS-запроса
func (p *WSPublisher) Join(sosID uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.conn.WriteJSON(joinMessage{Event: "sos:join", SOSID: sosID.String()}); err != nil {
		return fmt.Errorf("failed to join sos channel: %w", err)
	}
	return nil
}

// Leave отписывает подключение от канала SOS-запроса
func (p *WSPublisher) Leave(sosID uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.conn.WriteJSON(joinMessage{Event: "sos:leave", SOSID: sosID.String()}); err != nil {
		return fmt.Errorf("failed to leave sos channel: %w", err)
	}
	return nil
}

// PublishLocation отправляет замер позиции. Доставка best-effort:
// неудавшаяся отправка логируется и перекрывается следующим замером.
func (p *WSPublisher) PublishLocation(_ context.Context, sosID uuid.UUID, lat, lng float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	msg := locationMessage{
		Event:     "helper:location",
		SOSID:     sosID.String(),
		Latitude:  lat,
		Longitude: lng,
	}
	if err := p.conn.WriteJSON(msg); err != nil {
		p.logger.WithError(err).WithField("sos_id", sosID).Warn("Failed to send location sample")
	}
}

// Close закрывает соединение
func (p *WSPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.conn.Close()
}
