package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Station status values.
const (
	StatusActive      = "Active"
	StatusInactive    = "Inactive"
	StatusMaintenance = "Maintenance"
)

// ValidStatus reports whether s is one of the allowed station statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusInactive, StatusMaintenance:
		return true
	}
	return false
}

// Location is the geographic position of a station.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// Station is a charging station record. OwnerID is set at creation time
// and never changes afterwards.
type Station struct {
	ID            string    `gorm:"type:text;primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Location      Location  `gorm:"embedded;embeddedPrefix:location_" json:"location"`
	Status        string    `gorm:"not null;default:Active" json:"status"`
	PowerOutput   float64   `gorm:"not null" json:"powerOutput"`
	ConnectorType string    `gorm:"not null" json:"connectorType"`
	OwnerID       string    `gorm:"type:text;not null;index" json:"ownerId"`
	CreatedAt     time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (s *Station) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now
	return
}
