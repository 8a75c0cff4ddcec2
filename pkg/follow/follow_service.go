package follow

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
	FollowService interface {
		Follow(ctx context.Context, userID, vendorID string) error
		Unfollow(ctx context.Context, userID, vendorID string) error
		Status(ctx context.Context, userID, vendorID string) (domain.FollowStatusResponse, error)
		ListFollowed(ctx context.Context, userID string) ([]domain.VendorResponse, error)
	}

	followService struct {
		followRepository FollowRepository
		vendorRepository vendor.VendorRepository
	}
)

func NewFollowService(followRepository FollowRepository, vendorRepository vendor.VendorRepository) FollowService {
	return &followService{
		followRepository: followRepository,
		vendorRepository: vendorRepository,
	}
}

func (s *followService) Follow(ctx context.Context, userID, vendorID string) error {
	if _, err := s.vendorRepository.GetVendorByID(ctx, vendorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrVendorNotFound
		}
		return err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	vendorUUID, err := uuid.Parse(vendorID)
	if err != nil {
		return domain.ErrParseUUID
	}

	follow := &entities.Follow{
		ID:       uuid.New(),
		UserID:   userUUID,
		VendorID: vendorUUID,
	}

	if err := s.followRepository.CreateFollow(ctx, follow); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAlreadyFollowing
		}
		return err
	}
	return nil
}

func (s *followService) Unfollow(ctx context.Context, userID, vendorID string) error {
	affected, err := s.followRepository.DeleteFollow(ctx, userID, vendorID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFollowing
	}
	return nil
}

func (s *followService) Status(ctx context.Context, userID, vendorID string) (domain.FollowStatusResponse, error) {
	following, err := s.followRepository.FollowExists(ctx, userID, vendorID)
	if err != nil {
		return domain.FollowStatusResponse{}, err
	}

	count, err := s.followRepository.CountByVendor(ctx, vendorID)
	if err != nil {
		return domain.FollowStatusResponse{}, err
	}

	return domain.FollowStatusResponse{
		VendorID:      vendorID,
		IsFollowing:   following,
		FollowerCount: count,
	}, nil
}

// ListFollowed materializes vendor details for the caller's edges. Edges
// whose vendor has since been deleted are skipped.
func (s *followService) ListFollowed(ctx context.Context, userID string) ([]domain.VendorResponse, error) {
	follows, err := s.followRepository.GetFollowsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	vendors := make([]domain.VendorResponse, 0, len(follows))
	for _, f := range follows {
		if f.Vendor == nil {
			continue
		}

		images := make([]string, 0, len(f.Vendor.Images))
		for _, img := range f.Vendor.Images {
			images = append(images, img.ImageURL)
		}

		vendors = append(vendors, domain.VendorResponse{
			ID:           f.Vendor.ID.String(),
			UserID:       f.Vendor.UserID.String(),
			BusinessName: f.Vendor.BusinessName,
			CuisineType:  f.Vendor.CuisineType,
			Phone:        f.Vendor.Phone,
			Pincode:      f.Vendor.Pincode,
			Description:  f.Vendor.Description,
			Status:       f.Vendor.Status,
			Ratings: domain.RatingSummary{
				Average: f.Vendor.RatingAverage,
				Count:   f.Vendor.RatingCount,
			},
			Images:    images,
			CreatedAt: f.Vendor.CreatedAt,
		})
	}

	return vendors, nil
}
