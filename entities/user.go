package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name       string    `json:"name"`
	Email      string    `gorm:"uniqueIndex" json:"email"`
	Password   string    `json:"-"`
	Phone      string    `json:"phone"`
	Pincode    string    `json:"pincode"`
	Role       string    `json:"role"` // "customer" or "vendor"
	IsVerified bool      `json:"is_verified"`

	Timestamp
}
