package promotion

import (
	"context"
	"errors"
	"streetbite-backend/entities"
	"time"

	"gorm.io/gorm"
)

type (
	PromotionRepository interface {
		CreateOrder(ctx context.Context, order *entities.PromotionOrder) error
		GetOrderByOrderID(ctx context.Context, orderID string) (*entities.PromotionOrder, error)
		UpdateOrder(ctx context.Context, order *entities.PromotionOrder) error
		GetOrdersByVendor(ctx context.Context, vendorID string) ([]*entities.PromotionOrder, error)
		ExtendVendorPromotion(ctx context.Context, vendorID string, until time.Time) error
	}

	promotionRepository struct {
		db *gorm.DB
	}
)

func NewPromotionRepository(db *gorm.DB) PromotionRepository {
	return &promotionRepository{db: db}
}

func (r *promotionRepository) CreateOrder(ctx context.Context, order *entities.PromotionOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *promotionRepository) GetOrderByOrderID(ctx context.Context, orderID string) (*entities.PromotionOrder, error) {
	var order entities.PromotionOrder
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &order, nil
}

func (r *promotionRepository) UpdateOrder(ctx context.Context, order *entities.PromotionOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *promotionRepository) GetOrdersByVendor(ctx context.Context, vendorID string) ([]*entities.PromotionOrder, error) {
	var orders []*entities.PromotionOrder
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *promotionRepository) ExtendVendorPromotion(ctx context.Context, vendorID string, until time.Time) error {
	return r.db.WithContext(ctx).Model(&entities.Vendor{}).
		Where("id = ?", vendorID).
		Updates(map[string]interface{}{"promoted_until": until}).Error
}
