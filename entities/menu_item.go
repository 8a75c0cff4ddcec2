package entities

import (
	"github.com/google/uuid"
)

type MenuItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	VendorID    uuid.UUID `gorm:"index" json:"vendor_id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	IsAvailable bool      `json:"is_available"`

	Vendor *Vendor `gorm:"foreignKey:VendorID"`
	Timestamp
}
