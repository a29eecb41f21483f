package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Статусы жизненного цикла SOS-запроса.
// Переходы образуют направленный граф без возвратов:
// open -> assigned -> closed, open -> rejected.
const (
	StatusOpen     = "open"
	StatusAssigned = "assigned"
	StatusRejected = "rejected"
	StatusClosed   = "closed"
)

// Допустимые типы чрезвычайной ситуации.
const (
	SOSTypeMedical  = "Medical"
	SOSTypeVehicle  = "Vehicle Breakdown"
	SOSTypeAccident = "Accident"
	SOSTypePolice   = "Police"
)

var AllowedSOSTypes = []string{SOSTypeMedical, SOSTypeVehicle, SOSTypeAccident, SOSTypePolice}

// SOS представляет один SOS-запрос и его состояние.
// Записи никогда не удаляются, мутируют только status, helper_id и assigned_at.
type SOS struct {
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

// IsValidSOSType проверяет, что тип входит в список допустимых
func IsValidSOSType(t string) bool {
	for _, allowed := range AllowedSOSTypes {
		if allowed == t {
			return true
		}
	}
	return false
}

// ValidCoordinates проверяет, что пара широта/долгота корректна:
// конечные числа в диапазонах [-90,90] и [-180,180].
func ValidCoordinates(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
