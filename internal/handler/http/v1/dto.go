package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateSOSRequest DTO для создания SOS-запроса
// @Description DTO для создания SOS-запроса
type CreateSOSRequest struct {
	Type      string  `json:"type" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// SOSResponse DTO для ответа с информацией о SOS-запросе
// @Description DTO для ответа с информацией о SOS-запросе
type SOSResponse struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	Type       string     `json:"type"`
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	Status     string     `json:"status"`
	HelperID   *uuid.UUID `json:"helper_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	AssignedAt *time.Time `json:"assigned_at,omitempty"`
}

// RankedHelperResponse DTO для помощника с расстоянием до SOS-запроса
// @Description DTO для помощника с расстоянием до SOS-запроса
type RankedHelperResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Role       string    `json:"role"`
	Lat        *float64  `json:"lat,omitempty"`
	Lng        *float64  `json:"lng,omitempty"`
	DistanceKm float64   `json:"distance_km"`
}

// CreateAlertRequest DTO для публикации оповещения
// @Description DTO для публикации оповещения
type CreateAlertRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Lat         float64 `json:"lat" validate:"latitude"`
	Lng         float64 `json:"lng" validate:"longitude"`
}

// AlertResponse DTO для ответа с информацией об оповещении
// @Description DTO для ответа с информацией об оповещении
type AlertResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	CreatedAt   time.Time `json:"created_at"`
}

// NearestHelpersResponse DTO для ответа поиска ближайших помощников
// @Description DTO для ответа поиска ближайших помощников
type NearestHelpersResponse struct {
	SOSID   uuid.UUID               `json:"sos_id"`
	Helpers []*RankedHelperResponse `json:"helpers"`
}
