package relay

import (
	"time"

	"github.com/google/uuid"
)

// Типы событий, рассылаемых по каналу SOS-запроса.
const (
	EventLocationUpdate = "location:update"
	EventClosed         = "sos:closed"
)

// Event - событие канала SOS-запроса.
// At проставляется реле в момент приема, а не временем исходного замера.
// Нулевые координаты легальны (экватор, нулевой меридиан), поэтому
// поля сериализуются всегда.
type Event struct {
	Event     string    `json:"event"`
	SOSID     uuid.UUID `json:"sos_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	At        time.Time `json:"at"`
}
