package domain

import (
	"errors"
	"time"
)

const (
	CommentSortRecent = "recent"
	CommentSortLikes  = "likes"

	AreaFeedLimit       = 100
	VendorAreaFeedLimit = 50
	VendorFeedLimit     = 100
)

var (
	MessageSuccessPostComment   = "comment posted successfully"
	MessageSuccessGetComments   = "comments retrieved successfully"
	MessageSuccessDeleteComment = "comment deleted successfully"
	MessageSuccessToggleLike    = "comment like toggled successfully"

	MessageFailedPostComment   = "failed to post comment"
	MessageFailedGetComments   = "failed to retrieve comments"
	MessageFailedDeleteComment = "failed to delete comment"
	MessageFailedToggleLike    = "failed to toggle comment like"

	ErrCommentNotFound  = errors.New("comment not found")
	ErrInvalidPincode   = errors.New("pincode must be exactly 6 digits")
	ErrNotCommentAuthor = errors.New("only the author can delete this comment")
)

type (
	PostCommentRequest struct {
		Content         string `json:"content" validate:"required,max=2000"`
		Pincode         string `json:"pincode" validate:"omitempty"`
		VendorLabel     string `json:"vendor_label" validate:"omitempty,max=100"`
		VendorProfileID string `json:"vendor_profile_id" validate:"omitempty,uuid"`
	}

	CommentResponse struct {
		ID              string    `json:"id"`
		AuthorName      string    `json:"author_name"`
		Content         string    `json:"content"`
		Pincode         string    `json:"pincode"`
		VendorLabel     string    `json:"vendor_label,omitempty"`
		VendorProfileID string    `json:"vendor_profile_id,omitempty"`
		Likes           int       `json:"likes"`
		LikedByMe       bool      `json:"liked_by_me"`
		CreatedAt       time.Time `json:"created_at"`
	}

	ToggleLikeResponse struct {
		CommentID string `json:"comment_id"`
		Liked     bool   `json:"liked"`
		Likes     int    `json:"likes"`
	}
)
