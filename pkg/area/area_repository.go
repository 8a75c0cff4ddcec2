package area

import (
	"context"
	"errors"
	"streetbite-backend/entities"

	"gorm.io/gorm"
)

type (
	AreaRepository interface {
		FindNearest(ctx context.Context, lat, lng float64, radiusKM float64) (*entities.PostalArea, error)
		GetByPincode(ctx context.Context, pincode string) (*entities.PostalArea, error)
		GetByPincodes(ctx context.Context, pincodes []string) ([]*entities.PostalArea, error)
		CountAreas(ctx context.Context) (int64, error)
		CreateArea(ctx context.Context, area *entities.PostalArea) error
	}

	areaRepository struct {
		db *gorm.DB
	}
)

func NewAreaRepository(db *gorm.DB) AreaRepository {
	return &areaRepository{db: db}
}

func (r *areaRepository) FindNearest(ctx context.Context, lat, lng float64, radiusKM float64) (*entities.PostalArea, error) {
	var areas []*entities.PostalArea

	// Using PostgreSQL's earthdistance extension for location-based queries
	// Make sure you've installed the extension with:
	// CREATE EXTENSION IF NOT EXISTS "earthdistance" CASCADE;
	// CREATE EXTENSION IF NOT EXISTS "cube";
	query := `
		SELECT *,
		       earth_distance(ll_to_earth(?, ?), ll_to_earth(latitude, longitude)) as distance
		FROM postal_areas
		WHERE earth_box(ll_to_earth(?, ?), ?) @> ll_to_earth(latitude, longitude)
		ORDER BY distance ASC
		LIMIT 1
	`

	// radius in km, convert to meters for the query
	radiusMeters := radiusKM * 1000

	if err := r.db.WithContext(ctx).Raw(query, lat, lng, lat, lng, radiusMeters).Scan(&areas).Error; err != nil {
		return nil, err
	}

	if len(areas) == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return areas[0], nil
}

func (r *areaRepository) GetByPincode(ctx context.Context, pincode string) (*entities.PostalArea, error) {
	var area entities.PostalArea
	if err := r.db.WithContext(ctx).Where("pincode = ?", pincode).First(&area).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &area, nil
}

func (r *areaRepository) GetByPincodes(ctx context.Context, pincodes []string) ([]*entities.PostalArea, error) {
	var areas []*entities.PostalArea
	if len(pincodes) == 0 {
		return areas, nil
	}
	if err := r.db.WithContext(ctx).Where("pincode IN ?", pincodes).Find(&areas).Error; err != nil {
		return nil, err
	}
	return areas, nil
}

func (r *areaRepository) CountAreas(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.PostalArea{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *areaRepository) CreateArea(ctx context.Context, area *entities.PostalArea) error {
	return r.db.WithContext(ctx).Create(area).Error
}
