package models

import (
	"github.com/google/uuid"
)

// Допустимые роли помощников, определяют пригодность для подбора.
const (
	RoleMechanic  = "mechanic"
	RoleAmbulance = "ambulance"
	RolePolice    = "police"
	RoleVolunteer = "volunteer"
)

var AllowedHelperRoles = []string{RoleMechanic, RoleAmbulance, RolePolice, RoleVolunteer}

// Helper представляет профиль помощника, связанный 1:1 с учетной записью.
// Координаты nullable: помощник мог еще ни разу не передать позицию.
type Helper struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Role      string    `json:"role"`
	Lat       *float64  `json:"lat,omitempty"`
	Lng       *float64  `json:"lng,omitempty"`
	Available bool      `json:"available"`
	Blocked   bool      `json:"blocked"`
}

// RankedHelper - помощник с вычисленным расстоянием до SOS-запроса.
type RankedHelper struct {
	Helper
	DistanceKm float64 `json:"distance_km"`
}

// IsValidHelperRole проверяет, что роль входит в список допустимых
func IsValidHelperRole(role string) bool {
	for _, allowed := range AllowedHelperRoles {
		if allowed == role {
			return true
		}
	}
	return false
}
