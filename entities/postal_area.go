package entities

import (
	"github.com/google/uuid"
)

// PostalArea is read-mostly reference data, seeded externally.
type PostalArea struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Pincode   string    `gorm:"index" json:"pincode"`
	AreaName  string    `json:"area_name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`

	Timestamp
}
