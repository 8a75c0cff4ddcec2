package area

import (
	"context"
	"errors"
	"streetbite-backend/domain"

	"gorm.io/gorm"
)

type (
	AreaService interface {
		Resolve(ctx context.Context, lat, lng float64) (domain.ResolveAreaResponse, error)
		AreaNames(ctx context.Context, pincodes []string) (map[string]string, error)
	}

	areaService struct {
		areaRepository AreaRepository
	}
)

func NewAreaService(areaRepository AreaRepository) AreaService {
	return &areaService{areaRepository: areaRepository}
}

func (s *areaService) Resolve(ctx context.Context, lat, lng float64) (domain.ResolveAreaResponse, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return domain.ResolveAreaResponse{}, domain.ErrInvalidCoordinate
	}

	nearest, err := s.areaRepository.FindNearest(ctx, lat, lng, domain.AreaSearchRadiusKM)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ResolveAreaResponse{}, domain.ErrAreaNotFound
		}
		return domain.ResolveAreaResponse{}, err
	}

	return domain.ResolveAreaResponse{
		Pincode:  nearest.Pincode,
		AreaName: nearest.AreaName,
	}, nil
}

// AreaNames maps the given pincodes to their area names. Unknown pincodes are
// simply left out, callers treat the lookup as best-effort.
func (s *areaService) AreaNames(ctx context.Context, pincodes []string) (map[string]string, error) {
	areas, err := s.areaRepository.GetByPincodes(ctx, pincodes)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(areas))
	for _, a := range areas {
		names[a.Pincode] = a.AreaName
	}
	return names, nil
}
