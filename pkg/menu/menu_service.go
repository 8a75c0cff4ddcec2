package menu

import (
	"context"
	"errors"
	"streetbite-backend/domain"
	"streetbite-backend/entities"
	"streetbite-backend/pkg/vendor"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MenuService interface {
		AddMenuItem(ctx context.Context, req domain.AddMenuItemRequest, userID string) (domain.MenuItemResponse, error)
		UpdateMenuItem(ctx context.Context, id string, req domain.UpdateMenuItemRequest, userID string) error
		DeleteMenuItem(ctx context.Context, id string, userID string) error
		GetVendorMenu(ctx context.Context, vendorID string) ([]domain.MenuItemResponse, error)
	}

	menuService struct {
		menuRepository   MenuRepository
		vendorRepository vendor.VendorRepository
	}
)

func NewMenuService(menuRepository MenuRepository, vendorRepository vendor.VendorRepository) MenuService {
	return &menuService{
		menuRepository:   menuRepository,
		vendorRepository: vendorRepository,
	}
}

func (s *menuService) AddMenuItem(ctx context.Context, req domain.AddMenuItemRequest, userID string) (domain.MenuItemResponse, error) {
	if req.Price < 0 {
		return domain.MenuItemResponse{}, domain.ErrInvalidPrice
	}

	owner, err := s.vendorRepository.GetVendorByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuItemResponse{}, domain.ErrVendorNotFound
		}
		return domain.MenuItemResponse{}, err
	}

	item := &entities.MenuItem{
		ID:          uuid.New(),
		VendorID:    owner.ID,
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		IsAvailable: req.IsAvailable,
	}

	if err := s.menuRepository.AddMenuItem(ctx, item); err != nil {
		return domain.MenuItemResponse{}, err
	}

	return toMenuItemResponse(item), nil
}

func (s *menuService) UpdateMenuItem(ctx context.Context, id string, req domain.UpdateMenuItemRequest, userID string) error {
	item, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return domain.ErrInvalidPrice
		}
		item.Price = *req.Price
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	return s.menuRepository.UpdateMenuItem(ctx, item)
}

func (s *menuService) DeleteMenuItem(ctx context.Context, id string, userID string) error {
	if _, err := s.getOwnedItem(ctx, id, userID); err != nil {
		return err
	}
	return s.menuRepository.DeleteMenuItem(ctx, id)
}

func (s *menuService) GetVendorMenu(ctx context.Context, vendorID string) ([]domain.MenuItemResponse, error) {
	if _, err := s.vendorRepository.GetVendorByID(ctx, vendorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVendorNotFound
		}
		return nil, err
	}

	items, err := s.menuRepository.GetMenuItemsByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.MenuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toMenuItemResponse(item))
	}
	return response, nil
}

func (s *menuService) getOwnedItem(ctx context.Context, id, userID string) (*entities.MenuItem, error) {
	item, err := s.menuRepository.GetMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMenuItemNotFound
		}
		return nil, err
	}

	owner, err := s.vendorRepository.GetVendorByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVendorNotFound
		}
		return nil, err
	}

	if item.VendorID != owner.ID {
		return nil, domain.ErrUserNotAllowed
	}
	return item, nil
}

func toMenuItemResponse(item *entities.MenuItem) domain.MenuItemResponse {
	return domain.MenuItemResponse{
		ID:          item.ID.String(),
		VendorID:    item.VendorID.String(),
		Name:        item.Name,
		Price:       item.Price,
		Category:    item.Category,
		IsAvailable: item.IsAvailable,
	}
}
