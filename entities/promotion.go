package entities

import (
	"time"

	"github.com/google/uuid"
)

type PromotionOrder struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	VendorID   uuid.UUID  `gorm:"index" json:"vendor_id"`
	UserID     uuid.UUID  `json:"user_id"`
	OrderID    string     `gorm:"uniqueIndex" json:"order_id"`
	Days       int        `json:"days"`
	Amount     int64      `json:"amount"`
	Status     string     `json:"status"` // "Pending", "Settled", "Failed"
	InvoiceURL string     `json:"invoice_url,omitempty"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`

	Vendor *Vendor `gorm:"foreignKey:VendorID"`
	Timestamp
}
