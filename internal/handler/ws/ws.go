package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/shenikar/sos_dispatch_system/internal/relay"
	"github.com/shenikar/sos_dispatch_system/internal/service"
	"github.com/sirupsen/logrus"
)

// Клиентские события
const (
	eventJoin     = "sos:join"
	eventLeave    = "sos:leave"
	eventLocation = "helper:location"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
)

// clientMessage - входящее сообщение от клиента
type clientMessage struct {
	Event     string  `json:"event"`
	SOSID     string  `json:"sos_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Handler обслуживает WebSocket-подключения клиентов: подписки на
// комнаты SOS-запросов и прием координат помощников
type Handler struct {
	hub        *relay.Hub
	sosService service.SOSService
	logger     *logrus.Logger
	upgrader   websocket.Upgrader
}

func NewHandler(hub *relay.Hub, sosService service.SOSService, logger *logrus.Logger) *Handler {
	return &Handler{
		hub:        hub,
		sosService: sosService,
		logger:     logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Доступ к эндпоинту контролируется внешним шлюзом
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Serve обрабатывает запрос на установку WebSocket-соединения
func (h *Handler) Serve(c *gin.Context) {
	log := h.logger.WithField("method", "ws.Serve")

	rawUserID := c.GetHeader("X-User-ID")
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user identity required"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("Failed to upgrade connection")
		return
	}

	client := &client{
		handler: h,
		conn:    conn,
		userID:  userID,
		send:    make(chan relay.Event, 32),
		subs:    make(map[uuid.UUID]*relay.Subscriber),
		done:    make(chan struct{}),
	}

	go client.writeLoop()
	client.readLoop()
}

// client - одно WebSocket-соединение с его подписками
type client struct {
	handler *Handler
	conn    *websocket.Conn
	userID  uuid.UUID

	send chan relay.Event
	done chan struct{}

	mu   sync.Mutex
	subs map[uuid.UUID]*relay.Subscriber
}

// readLoop читает сообщения клиента до разрыва соединения
func (c *client) readLoop() {
	defer c.teardown()

	c.conn.SetReadLimit(4096)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.handler.logger.WithError(err).Debug("Malformed ws message dropped")
			continue
		}

		sosID, err := uuid.Parse(msg.SOSID)
		if err != nil {
			c.handler.logger.WithField("sos_id", msg.SOSID).Debug("Invalid sos_id in ws message")
			continue
		}

		switch msg.Event {
		case eventJoin:
			c.join(sosID)
		case eventLeave:
			c.leave(sosID)
		case eventLocation:
			// Некорректные координаты отбрасываются внутри сервиса
			c.handler.sosService.IngestHelperLocation(context.Background(), sosID, c.userID, msg.Latitude, msg.Longitude)
		default:
			c.handler.logger.WithField("event", msg.Event).Debug("Unknown ws event dropped")
		}
	}
}

// join подписывает соединение на комнату SOS-запроса и
// запускает пересылку ее событий в это соединение
func (c *client) join(sosID uuid.UUID) {
	c.mu.Lock()
	if _, ok := c.subs[sosID]; ok {
		c.mu.Unlock()
		return
	}
	sub := c.handler.hub.Subscribe(sosID)
	c.subs[sosID] = sub
	c.mu.Unlock()

	go func() {
		for ev := range sub.Events() {
			select {
			case c.send <- ev:
			case <-c.done:
				return
			}
		}
	}()
}

func (c *client) leave(sosID uuid.UUID) {
	c.mu.Lock()
	sub, ok := c.subs[sosID]
	if ok {
		delete(c.subs, sosID)
	}
	c.mu.Unlock()

	if ok {
		c.handler.hub.Unsubscribe(sosID, sub)
	}
}

// writeLoop сериализует события в соединение и поддерживает его ping-ами
func (c *client) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case ev := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}

// teardown снимает все подписки соединения и останавливает writeLoop
func (c *client) teardown() {
	c.mu.Lock()
	subs := c.subs
	c.subs = make(map[uuid.UUID]*relay.Subscriber)
	c.mu.Unlock()

	for sosID, sub := range subs {
		c.handler.hub.Unsubscribe(sosID, sub)
	}

	close(c.done)
	_ = c.conn.Close()
}
