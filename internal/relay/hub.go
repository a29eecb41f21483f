package relay

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Subscriber - один подписчик канала SOS-запроса.
// События читаются из Events(); после отписки канал закрывается.
type Subscriber struct {
	ch        chan Event
	closeOnce sync.Once
}

// Events возвращает канал входящих событий подписчика
func (s *Subscriber) Events() <-chan Event {
	return s.ch
}

func (s *Subscriber) close() {
	s.closeOnce.Do(func() {
		close(s.ch)
	})
}

// Hub хранит подписчиков по каналам SOS-запросов и рассылает события.
// Канал создается неявно при первой подписке и удаляется, когда пустеет
// или после терминального события. Истории нет: опоздавший подписчик
// видит только последующие события.
type Hub struct {
	mu         sync.Mutex
	channels   map[uuid.UUID]map[*Subscriber]struct{}
	bufferSize int
	logger     *logrus.Logger
}

func NewHub(bufferSize int, logger *logrus.Logger) *Hub {
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Hub{
		channels:   make(map[uuid.UUID]map[*Subscriber]struct{}),
		bufferSize: bufferSize,
		logger:     logger,
	}
}

// Subscribe подключает нового подписчика к каналу SOS-запроса
func (h *Hub) Subscribe(sosID uuid.UUID) *Subscriber {
	sub := &Subscriber{ch: make(chan Event, h.bufferSize)}

	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.channels[sosID]
	if !ok {
		subs = make(map[*Subscriber]struct{})
		h.channels[sosID] = subs
	}
	subs[sub] = struct{}{}
	return sub
}

// Unsubscribe отключает подписчика; идемпотентна. После возврата
// подписчику не доставляется ни одного события.
func (h *Hub) Unsubscribe(sosID uuid.UUID, sub *Subscriber) {
	if sub == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if subs, ok := h.channels[sosID]; ok {
		delete(subs, sub)
		if len(subs) == 0 {
			delete(h.channels, sosID)
		}
	}
	sub.close()
}

// Broadcast рассылает событие всем текущим подписчикам канала.
// Отправка неблокирующая: у медленного подписчика с заполненным буфером
// событие теряется, остальных это не задерживает. Порядок внутри канала
// соответствует порядку вызовов Broadcast. После терминального события
// канал разбирается, подписчики закрываются.
func (h *Hub) Broadcast(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.channels[ev.SOSID]
	if !ok {
		return
	}

	for sub := range subs {
		select {
		case sub.ch <- ev:
		default:
			h.logger.WithField("sos_id", ev.SOSID).Warn("Dropping relay event for slow subscriber")
		}
	}

	if ev.Event == EventClosed {
		for sub := range subs {
			sub.close()
		}
		delete(h.channels, ev.SOSID)
	}
}

// SubscriberCount возвращает число подписчиков канала
func (h *Hub) SubscriberCount(sosID uuid.UUID) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.channels[sosID])
}
