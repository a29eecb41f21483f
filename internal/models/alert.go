package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAlertTitle подставляется, когда автор не указал заголовок
const DefaultAlertTitle = "Emergency"

// Alert - публичное оповещение на доске сообщества.
// В отличие от SOS-запроса жизненного цикла не имеет: запись создается
// и читается, статусов и назначений нет.
type Alert struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	CreatedAt   time.Time `json:"created_at"`
}
