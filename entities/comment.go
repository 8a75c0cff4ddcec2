package entities

import (
	"github.com/google/uuid"
)

// Comment is pincode-scoped discussion. VendorProfileID is nil for general
// area talk; set, the comment only shows up in that vendor's feed.
type Comment struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID  `gorm:"index" json:"user_id"`
	AuthorName      string     `json:"author_name"` // snapshotted at creation
	Content         string     `json:"content"`
	Pincode         string     `gorm:"index" json:"pincode"`
	VendorLabel     string     `json:"vendor_label,omitempty"`
	VendorProfileID *uuid.UUID `gorm:"index" json:"vendor_profile_id,omitempty"`
	Likes           int        `json:"likes"`

	User    *User          `gorm:"foreignKey:UserID"`
	LikedBy []*CommentLike `gorm:"foreignKey:CommentID"`
	Timestamp
}

type CommentLike struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CommentID uuid.UUID `gorm:"index:idx_comment_like_pair,unique" json:"comment_id"`
	UserID    uuid.UUID `gorm:"index:idx_comment_like_pair,unique" json:"user_id"`

	Comment *Comment `gorm:"foreignKey:CommentID"`
	Timestamp
}
