package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSubmitRating = "rating submitted successfully"
	MessageSuccessGetRatings   = "ratings retrieved successfully"

	MessageFailedSubmitRating = "failed to submit rating"
	MessageFailedGetRatings   = "failed to retrieve ratings"

	ErrInvalidRatingValue = errors.New("rating value must be between 1 and 5")
	ErrRatingNotFound     = errors.New("rating not found")
)

type (
	SubmitRatingRequest struct {
		VendorID string  `json:"vendor_id" validate:"required,uuid"`
		Value    int     `json:"value" validate:"required,min=1,max=5"`
		Review   *string `json:"review" validate:"omitempty,max=500"`
	}

	RatingResponse struct {
		ID        string    `json:"id"`
		VendorID  string    `json:"vendor_id"`
		UserID    string    `json:"user_id"`
		Value     int       `json:"value"`
		Review    string    `json:"review,omitempty"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	// ConsensusSnapshot is the vendor's aggregate after a write, together
	// with the caller's own row.
	ConsensusSnapshot struct {
		VendorID string         `json:"vendor_id"`
		Ratings  RatingSummary  `json:"ratings"`
		Own      RatingResponse `json:"own_rating"`
	}
)
