package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	VendorStatusOpen       = "open"
	VendorStatusClosed     = "closed"
	VendorStatusRelocating = "relocating"
	VendorStatusSoldOut    = "sold_out"

	MaxVendorImages = 5
	VendorListLimit = 50
	SortByRating    = "rating"
	SortByFollowers = "followers"
	SortByPriceHigh = "price_high"
	SortByPriceLow  = "price_low"
)

var (
	MessageSuccessCreateVendor   = "vendor profile created successfully"
	MessageSuccessUpdateVendor   = "vendor profile updated successfully"
	MessageSuccessGetVendor      = "vendor retrieved successfully"
	MessageSuccessListVendors    = "vendors retrieved successfully"
	MessageSuccessUpdateLocation = "vendor location updated successfully"
	MessageSuccessUploadImage    = "vendor image uploaded successfully"
	MessageSuccessDeleteImage    = "vendor image deleted successfully"

	MessageFailedCreateVendor   = "failed to create vendor profile"
	MessageFailedUpdateVendor   = "failed to update vendor profile"
	MessageFailedGetVendor      = "failed to retrieve vendor"
	MessageFailedListVendors    = "failed to retrieve vendors"
	MessageFailedUpdateLocation = "failed to update vendor location"
	MessageFailedUploadImage    = "failed to upload vendor image"
	MessageFailedDeleteImage    = "failed to delete vendor image"

	ErrVendorNotFound      = errors.New("vendor not found")
	ErrVendorProfileExists = errors.New("vendor profile already exists for this user")
	ErrInvalidVendorStatus = errors.New("invalid vendor status")
	ErrInvalidMinRating    = errors.New("min_rating must be between 0 and 5")
	ErrTooManyImages       = errors.New("vendor already has the maximum number of images")
	ErrImageNotFound       = errors.New("vendor image not found")
)

type (
	CreateVendorRequest struct {
		BusinessName string `json:"business_name" validate:"required"`
		CuisineType  string `json:"cuisine_type" validate:"required"`
		Phone        string `json:"phone" validate:"required,min=10,max=13"`
		Pincode      string `json:"pincode" validate:"required,len=6,numeric"`
		Description  string `json:"description" validate:"omitempty,max=1000"`
	}

	UpdateVendorRequest struct {
		BusinessName string `json:"business_name" validate:"omitempty"`
		CuisineType  string `json:"cuisine_type" validate:"omitempty"`
		Phone        string `json:"phone" validate:"omitempty,min=10,max=13"`
		Description  string `json:"description" validate:"omitempty,max=1000"`
		Status       string `json:"status" validate:"omitempty,oneof=open closed relocating sold_out"`
	}

	UpdateLocationRequest struct {
		Latitude  float64 `json:"latitude" validate:"required,min=-90,max=90"`
		Longitude float64 `json:"longitude" validate:"required,min=-180,max=180"`
		Accuracy  float64 `json:"accuracy" validate:"omitempty,min=0"`
	}

	UploadVendorImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	VendorFilter struct {
		Cuisine   string
		Pincode   string
		Status    string
		MinRating float64
		SortBy    string
	}

	RatingSummary struct {
		Average float64 `json:"average"`
		Count   int64   `json:"count"`
	}

	// EnrichedVendor augments a vendor row with read-side derived fields.
	EnrichedVendor struct {
		ID               string        `json:"id"`
		BusinessName     string        `json:"business_name"`
		CuisineType      string        `json:"cuisine_type"`
		Pincode          string        `json:"pincode"`
		AreaName         string        `json:"area_name,omitempty"`
		Status           string        `json:"status"`
		AverageMenuPrice float64       `json:"average_menu_price"`
		Ratings          RatingSummary `json:"ratings"`
		Images           []string      `json:"images,omitempty"`
		IsPromoted       bool          `json:"is_promoted"`
	}

	VendorResponse struct {
		ID            string        `json:"id"`
		UserID        string        `json:"user_id"`
		BusinessName  string        `json:"business_name"`
		CuisineType   string        `json:"cuisine_type"`
		Phone         string        `json:"phone"`
		Pincode       string        `json:"pincode"`
		Description   string        `json:"description,omitempty"`
		Status        string        `json:"status"`
		Ratings       RatingSummary `json:"ratings"`
		Images        []string      `json:"images,omitempty"`
		PromotedUntil *time.Time    `json:"promoted_until,omitempty"`
		CreatedAt     time.Time     `json:"created_at"`
	}
)
