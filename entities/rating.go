package entities

import (
	"github.com/google/uuid"
)

// Rating holds one customer's rating of one vendor. The composite unique
// index makes resubmission an update rather than a second row.
type Rating struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"index:idx_rating_pair,unique" json:"user_id"`
	VendorID uuid.UUID `gorm:"index:idx_rating_pair,unique;index" json:"vendor_id"`
	Value    int       `json:"value"` // 1..5
	Review   string    `gorm:"size:500" json:"review,omitempty"`

	User   *User   `gorm:"foreignKey:UserID"`
	Vendor *Vendor `gorm:"foreignKey:VendorID"`
	Timestamp
}
