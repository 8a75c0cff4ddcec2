package rating

import (
	"context"
	"errors"
	"math"
	"streetbite-backend/domain"
	"streetbite-backend/entities"
	"streetbite-backend/pkg/vendor"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RatingService interface {
		SubmitRating(ctx context.Context, req domain.SubmitRatingRequest, userID string) (domain.ConsensusSnapshot, error)
		GetVendorRatings(ctx context.Context, vendorID string, page, limit int) ([]domain.RatingResponse, int64, error)
	}

	ratingService struct {
		ratingRepository RatingRepository
		vendorRepository vendor.VendorRepository
	}
)

func NewRatingService(ratingRepository RatingRepository, vendorRepository vendor.VendorRepository) RatingService {
	return &ratingService{
		ratingRepository: ratingRepository,
		vendorRepository: vendorRepository,
	}
}

// SubmitRating writes or overwrites the caller's rating for a vendor and
// recomputes the vendor's consensus from all rows. The review text is only
// touched when the request carries one.
func (s *ratingService) SubmitRating(ctx context.Context, req domain.SubmitRatingRequest, userID string) (domain.ConsensusSnapshot, error) {
	if req.Value < 1 || req.Value > 5 {
		return domain.ConsensusSnapshot{}, domain.ErrInvalidRatingValue
	}

	if _, err := s.vendorRepository.GetVendorByID(ctx, req.VendorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ConsensusSnapshot{}, domain.ErrVendorNotFound
		}
		return domain.ConsensusSnapshot{}, err
	}

	row, err := s.upsertRating(ctx, req, userID)
	if err != nil {
		return domain.ConsensusSnapshot{}, err
	}

	aggregate, err := s.ratingRepository.AggregateByVendor(ctx, req.VendorID)
	if err != nil {
		return domain.ConsensusSnapshot{}, err
	}

	average := round1(aggregate.Average)
	if aggregate.Count == 0 {
		average = 0
	}

	if err := s.ratingRepository.UpdateVendorSummary(ctx, req.VendorID, average, aggregate.Count); err != nil {
		return domain.ConsensusSnapshot{}, err
	}

	return domain.ConsensusSnapshot{
		VendorID: req.VendorID,
		Ratings: domain.RatingSummary{
			Average: average,
			Count:   aggregate.Count,
		},
		Own: toRatingResponse(row),
	}, nil
}

func (s *ratingService) upsertRating(ctx context.Context, req domain.SubmitRatingRequest, userID string) (*entities.Rating, error) {
	existing, err := s.ratingRepository.GetRatingByPair(ctx, userID, req.VendorID)
	if err == nil {
		existing.Value = req.Value
		if req.Review != nil {
			existing.Review = *req.Review
		}
		if err := s.ratingRepository.UpdateRating(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	vendorUUID, err := uuid.Parse(req.VendorID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	rating := &entities.Rating{
		ID:       uuid.New(),
		UserID:   userUUID,
		VendorID: vendorUUID,
		Value:    req.Value,
	}
	if req.Review != nil {
		rating.Review = *req.Review
	}

	if err := s.ratingRepository.CreateRating(ctx, rating); err != nil {
		// The pair index caught a concurrent insert, fold into an update.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.upsertRating(ctx, req, userID)
		}
		return nil, err
	}

	return rating, nil
}

func (s *ratingService) GetVendorRatings(ctx context.Context, vendorID string, page, limit int) ([]domain.RatingResponse, int64, error) {
	ratings, count, err := s.ratingRepository.GetRatingsByVendor(ctx, vendorID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.RatingResponse, 0, len(ratings))
	for _, r := range ratings {
		response = append(response, toRatingResponse(r))
	}
	return response, count, nil
}

func toRatingResponse(r *entities.Rating) domain.RatingResponse {
	return domain.RatingResponse{
		ID:        r.ID.String(),
		VendorID:  r.VendorID.String(),
		UserID:    r.UserID.String(),
		Value:     r.Value,
		Review:    r.Review,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
