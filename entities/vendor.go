package entities

import (
	"time"

	"github.com/google/uuid"
)

type Vendor struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	BusinessName string    `json:"business_name"`
	CuisineType  string    `json:"cuisine_type"`
	Phone        string    `json:"phone"`
	Pincode      string    `json:"pincode"`
	Description  string    `json:"description,omitempty"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Accuracy  *float64 `json:"accuracy,omitempty"`

	// Maintained by the rating service only; always mirrors the rating rows.
	RatingAverage float64 `json:"rating_average"`
	RatingCount   int64   `json:"rating_count"`

	Status        string     `json:"status"` // "open", "closed", "relocating", "sold_out"
	PromotedUntil *time.Time `json:"promoted_until,omitempty"`

	User      *User          `gorm:"foreignKey:UserID"`
	MenuItems []*MenuItem    `gorm:"foreignKey:VendorID"`
	Images    []*VendorImage `gorm:"foreignKey:VendorID"`
	Timestamp
}

type VendorImage struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	VendorID uuid.UUID `gorm:"index" json:"vendor_id"`
	ImageURL string    `json:"image_url"`
	Position int       `json:"position"`

	Vendor *Vendor `gorm:"foreignKey:VendorID"`
	Timestamp
}
