package entities

import (
	"github.com/google/uuid"
)

// Follow is a customer-to-vendor edge. The composite unique index closes the
// race between two concurrent follow calls for the same pair.
type Follow struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"index:idx_follow_pair,unique" json:"user_id"`
	VendorID uuid.UUID `gorm:"index:idx_follow_pair,unique;index" json:"vendor_id"`

	User   *User   `gorm:"foreignKey:UserID"`
	Vendor *Vendor `gorm:"foreignKey:VendorID"`
	Timestamp
}
