package domain

import "errors"

const (
	// Maximum nearest-neighbor search radius in km.
	AreaSearchRadiusKM = 5
)

var (
	MessageSuccessResolveArea = "area resolved successfully"
	MessageFailedResolveArea  = "failed to resolve area"

	ErrAreaNotFound      = errors.New("no postal area found within search radius")
	ErrInvalidCoordinate = errors.New("invalid coordinates")
)

type (
	ResolveAreaRequest struct {
		Latitude  float64 `json:"latitude" validate:"required,min=-90,max=90"`
		Longitude float64 `json:"longitude" validate:"required,min=-180,max=180"`
	}

	ResolveAreaResponse struct {
		Pincode  string `json:"pincode"`
		AreaName string `json:"area_name"`
	}
)
