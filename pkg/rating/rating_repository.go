package rating

import (
	"context"
	"errors"
	"streetbite-backend/entities"

	"gorm.io/gorm"
)

type (
	// VendorAggregate carries the recomputed consensus for one vendor.
	VendorAggregate struct {
		Average float64
		Count   int64
	}

	RatingRepository interface {
		CreateRating(ctx context.Context, rating *entities.Rating) error
		UpdateRating(ctx context.Context, rating *entities.Rating) error
		GetRatingByPair(ctx context.Context, userID, vendorID string) (*entities.Rating, error)
		GetRatingsByVendor(ctx context.Context, vendorID string, page, limit int) ([]*entities.Rating, int64, error)
		AggregateByVendor(ctx context.Context, vendorID string) (VendorAggregate, error)
		UpdateVendorSummary(ctx context.Context, vendorID string, average float64, count int64) error
	}

	ratingRepository struct {
		db *gorm.DB
	}
)

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) CreateRating(ctx context.Context, rating *entities.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *ratingRepository) UpdateRating(ctx context.Context, rating *entities.Rating) error {
	return r.db.WithContext(ctx).Save(rating).Error
}

func (r *ratingRepository) GetRatingByPair(ctx context.Context, userID, vendorID string) (*entities.Rating, error) {
	var rating entities.Rating
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND vendor_id = ?", userID, vendorID).
		First(&rating).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) GetRatingsByVendor(ctx context.Context, vendorID string, page, limit int) ([]*entities.Rating, int64, error) {
	var ratings []*entities.Rating
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("vendor_id = ?", vendorID)

	if err := query.Model(&entities.Rating{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("User").
		Order("updated_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&ratings).Error; err != nil {
		return nil, 0, err
	}

	return ratings, count, nil
}

// AggregateByVendor recomputes the consensus from all rating rows. The full
// recompute on every write keeps the summary immune to drift.
func (r *ratingRepository) AggregateByVendor(ctx context.Context, vendorID string) (VendorAggregate, error) {
	var result struct {
		Average float64
		Count   int64
	}

	if err := r.db.WithContext(ctx).
		Model(&entities.Rating{}).
		Select("COALESCE(AVG(value), 0) as average, COUNT(*) as count").
		Where("vendor_id = ?", vendorID).
		Scan(&result).Error; err != nil {
		return VendorAggregate{}, err
	}

	return VendorAggregate{Average: result.Average, Count: result.Count}, nil
}

func (r *ratingRepository) UpdateVendorSummary(ctx context.Context, vendorID string, average float64, count int64) error {
	return r.db.WithContext(ctx).
		Model(&entities.Vendor{}).
		Where("id = ?", vendorID).
		Updates(map[string]interface{}{
			"rating_average": average,
			"rating_count":   count,
		}).Error
}
