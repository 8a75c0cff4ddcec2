package follow

import (
	"context"
	"streetbite-backend/entities"

	"gorm.io/gorm"
)

type (
	FollowRepository interface {
		CreateFollow(ctx context.Context, follow *entities.Follow) error
		DeleteFollow(ctx context.Context, userID, vendorID string) (int64, error)
		FollowExists(ctx context.Context, userID, vendorID string) (bool, error)
		CountByVendor(ctx context.Context, vendorID string) (int64, error)
		GetFollowsByUser(ctx context.Context, userID string) ([]*entities.Follow, error)
	}

	followRepository struct {
		db *gorm.DB
	}
)

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// CreateFollow relies on the pair unique index; a duplicate surfaces as
// gorm.ErrDuplicatedKey rather than being pre-checked.
func (r *followRepository) CreateFollow(ctx context.Context, follow *entities.Follow) error {
	return r.db.WithContext(ctx).Create(follow).Error
}

func (r *followRepository) DeleteFollow(ctx context.Context, userID, vendorID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND vendor_id = ?", userID, vendorID).
		Delete(&entities.Follow{})
	return result.RowsAffected, result.Error
}

func (r *followRepository) FollowExists(ctx context.Context, userID, vendorID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Follow{}).
		Where("user_id = ? AND vendor_id = ?", userID, vendorID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountByVendor is always a live count of edges, never a cached field.
func (r *followRepository) CountByVendor(ctx context.Context, vendorID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Follow{}).
		Where("vendor_id = ?", vendorID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *followRepository) GetFollowsByUser(ctx context.Context, userID string) ([]*entities.Follow, error) {
	var follows []*entities.Follow
	if err := r.db.WithContext(ctx).
		Preload("Vendor").
		Preload("Vendor.Images").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&follows).Error; err != nil {
		return nil, err
	}
	return follows, nil
}
