package comment

import (
	"context"
	"errors"
	"regexp"
	"streetbite-backend/domain"
	"streetbite-backend/entities"
	"streetbite-backend/pkg/user"
	"streetbite-backend/pkg/vendor"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)

type (
	CommentService interface {
		PostComment(ctx context.Context, req domain.PostCommentRequest, userID, role string) (domain.CommentResponse, error)
		ListAreaComments(ctx context.Context, pincode, sortBy, userID string) ([]domain.CommentResponse, error)
		ListVendorAreaComments(ctx context.Context, userID, role string) ([]domain.CommentResponse, error)
		ListVendorComments(ctx context.Context, vendorID, userID string) ([]domain.CommentResponse, error)
		ToggleLike(ctx context.Context, commentID, userID string) (domain.ToggleLikeResponse, error)
		DeleteComment(ctx context.Context, commentID, userID string) error
	}

	commentService struct {
		commentRepository CommentRepository
		userRepository    user.UserRepository
		vendorService     vendor.VendorService
		vendorRepository  vendor.VendorRepository
	}
)

func NewCommentService(commentRepository CommentRepository, userRepository user.UserRepository, vendorService vendor.VendorService, vendorRepository vendor.VendorRepository) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		userRepository:    userRepository,
		vendorService:     vendorService,
		vendorRepository:  vendorRepository,
	}
}

// PostComment writes a comment for the customer role. The pincode either
// comes with the request or is inherited from the targeted vendor profile.
func (s *commentService) PostComment(ctx context.Context, req domain.PostCommentRequest, userID, role string) (domain.CommentResponse, error) {
	if role != domain.RoleCustomer {
		return domain.CommentResponse{}, domain.ErrUserNotAllowed
	}

	account, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CommentResponse{}, domain.ErrUserNotFound
		}
		return domain.CommentResponse{}, err
	}

	pincode := req.Pincode
	var vendorProfileID *uuid.UUID
	if req.VendorProfileID != "" {
		target, err := s.vendorRepository.GetVendorByID(ctx, req.VendorProfileID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.CommentResponse{}, domain.ErrVendorNotFound
			}
			return domain.CommentResponse{}, err
		}
		vendorProfileID = &target.ID
		pincode = target.Pincode
	}

	if !pincodePattern.MatchString(pincode) {
		return domain.CommentResponse{}, domain.ErrInvalidPincode
	}

	comment := &entities.Comment{
		ID:              uuid.New(),
		UserID:          account.ID,
		AuthorName:      account.Name,
		Content:         req.Content,
		Pincode:         pincode,
		VendorLabel:     req.VendorLabel,
		VendorProfileID: vendorProfileID,
	}

	if err := s.commentRepository.CreateComment(ctx, comment); err != nil {
		return domain.CommentResponse{}, err
	}

	return toCommentResponse(comment, false), nil
}

// ListAreaComments is the general area feed: comments without a vendor
// target, scoped by pincode when one is given.
func (s *commentService) ListAreaComments(ctx context.Context, pincode, sortBy, userID string) ([]domain.CommentResponse, error) {
	if pincode != "" && !pincodePattern.MatchString(pincode) {
		return nil, domain.ErrInvalidPincode
	}

	comments, err := s.commentRepository.ListGeneralByPincode(ctx, pincode, sortBy, domain.AreaFeedLimit)
	if err != nil {
		return nil, err
	}

	return s.withLikedByMe(ctx, comments, userID)
}

// ListVendorAreaComments is the vendor's view of their own area: general
// comments at the vendor's pincode. A missing profile is synthesized first.
func (s *commentService) ListVendorAreaComments(ctx context.Context, userID, role string) ([]domain.CommentResponse, error) {
	if role != domain.RoleVendor {
		return nil, domain.ErrUserNotAllowed
	}

	profile, err := s.vendorService.EnsureVendorProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepository.ListGeneralByPincode(ctx, profile.Pincode, domain.CommentSortRecent, domain.VendorAreaFeedLimit)
	if err != nil {
		return nil, err
	}

	return s.withLikedByMe(ctx, comments, userID)
}

// ListVendorComments is the public feed of comments targeting one vendor
// profile, regardless of pincode.
func (s *commentService) ListVendorComments(ctx context.Context, vendorID, userID string) ([]domain.CommentResponse, error) {
	if _, err := s.vendorRepository.GetVendorByID(ctx, vendorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVendorNotFound
		}
		return nil, err
	}

	comments, err := s.commentRepository.ListByVendorProfile(ctx, vendorID, domain.VendorFeedLimit)
	if err != nil {
		return nil, err
	}

	return s.withLikedByMe(ctx, comments, userID)
}

// ToggleLike flips the caller's membership in the like set: absent adds and
// increments, present removes and decrements with the count floored at zero.
func (s *commentService) ToggleLike(ctx context.Context, commentID, userID string) (domain.ToggleLikeResponse, error) {
	if _, err := s.commentRepository.GetCommentByID(ctx, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ToggleLikeResponse{}, domain.ErrCommentNotFound
		}
		return domain.ToggleLikeResponse{}, err
	}

	commentUUID, err := uuid.Parse(commentID)
	if err != nil {
		return domain.ToggleLikeResponse{}, domain.ErrParseUUID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ToggleLikeResponse{}, domain.ErrParseUUID
	}

	like := &entities.CommentLike{
		ID:        uuid.New(),
		CommentID: commentUUID,
		UserID:    userUUID,
	}

	liked := true
	if err := s.commentRepository.CreateLike(ctx, like); err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ToggleLikeResponse{}, err
		}
		// Already in the like set, this call removes the membership.
		if _, err := s.commentRepository.DeleteLike(ctx, commentID, userID); err != nil {
			return domain.ToggleLikeResponse{}, err
		}
		if err := s.commentRepository.DecrementLikes(ctx, commentID); err != nil {
			return domain.ToggleLikeResponse{}, err
		}
		liked = false
	} else {
		if err := s.commentRepository.IncrementLikes(ctx, commentID); err != nil {
			return domain.ToggleLikeResponse{}, err
		}
	}

	updated, err := s.commentRepository.GetCommentByID(ctx, commentID)
	if err != nil {
		return domain.ToggleLikeResponse{}, err
	}

	return domain.ToggleLikeResponse{
		CommentID: commentID,
		Liked:     liked,
		Likes:     updated.Likes,
	}, nil
}

func (s *commentService) DeleteComment(ctx context.Context, commentID, userID string) error {
	comment, err := s.commentRepository.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCommentNotFound
		}
		return err
	}

	if comment.UserID.String() != userID {
		return domain.ErrNotCommentAuthor
	}

	return s.commentRepository.DeleteComment(ctx, commentID)
}

func (s *commentService) withLikedByMe(ctx context.Context, comments []*entities.Comment, userID string) ([]domain.CommentResponse, error) {
	ids := make([]string, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.ID.String())
	}

	liked, err := s.commentRepository.GetLikedCommentIDs(ctx, ids, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.CommentResponse, 0, len(comments))
	for _, c := range comments {
		response = append(response, toCommentResponse(c, liked[c.ID.String()]))
	}
	return response, nil
}

func toCommentResponse(c *entities.Comment, likedByMe bool) domain.CommentResponse {
	resp := domain.CommentResponse{
		ID:          c.ID.String(),
		AuthorName:  c.AuthorName,
		Content:     c.Content,
		Pincode:     c.Pincode,
		VendorLabel: c.VendorLabel,
		Likes:       c.Likes,
		LikedByMe:   likedByMe,
		CreatedAt:   c.CreatedAt,
	}
	if c.VendorProfileID != nil {
		resp.VendorProfileID = c.VendorProfileID.String()
	}
	return resp
}
