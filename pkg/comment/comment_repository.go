package comment

import (
	"context"
	"errors"
	"streetbite-backend/entities"

	"gorm.io/gorm"
)

type (
	CommentRepository interface {
		CreateComment(ctx context.Context, comment *entities.Comment) error
		GetCommentByID(ctx context.Context, id string) (*entities.Comment, error)
		DeleteComment(ctx context.Context, id string) error
		ListGeneralByPincode(ctx context.Context, pincode string, sortBy string, limit int) ([]*entities.Comment, error)
		ListByVendorProfile(ctx context.Context, vendorID string, limit int) ([]*entities.Comment, error)

		CreateLike(ctx context.Context, like *entities.CommentLike) error
		DeleteLike(ctx context.Context, commentID, userID string) (int64, error)
		IncrementLikes(ctx context.Context, commentID string) error
		DecrementLikes(ctx context.Context, commentID string) error
		GetLikedCommentIDs(ctx context.Context, commentIDs []string, userID string) (map[string]bool, error)
	}

	commentRepository struct {
		db *gorm.DB
	}
)

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) CreateComment(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetCommentByID(ctx context.Context, id string) (*entities.Comment, error) {
	var comment entities.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) DeleteComment(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).
		Where("comment_id = ?", id).
		Delete(&entities.CommentLike{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Comment{}).Error
}

// ListGeneralByPincode returns non-vendor-targeted comments. An empty
// pincode still scopes to the null-target set, never the whole table.
func (r *commentRepository) ListGeneralByPincode(ctx context.Context, pincode string, sortBy string, limit int) ([]*entities.Comment, error) {
	var comments []*entities.Comment

	query := r.db.WithContext(ctx).Where("vendor_profile_id IS NULL")
	if pincode != "" {
		query = query.Where("pincode = ?", pincode)
	}

	order := "created_at DESC"
	if sortBy == "likes" {
		order = "likes DESC"
	}

	if err := query.
		Order(order).
		Limit(limit).
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) ListByVendorProfile(ctx context.Context, vendorID string, limit int) ([]*entities.Comment, error) {
	var comments []*entities.Comment
	if err := r.db.WithContext(ctx).
		Where("vendor_profile_id = ?", vendorID).
		Order("created_at DESC").
		Limit(limit).
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) CreateLike(ctx context.Context, like *entities.CommentLike) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *commentRepository) DeleteLike(ctx context.Context, commentID, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&entities.CommentLike{})
	return result.RowsAffected, result.Error
}

func (r *commentRepository) IncrementLikes(ctx context.Context, commentID string) error {
	return r.db.WithContext(ctx).Model(&entities.Comment{}).
		Where("id = ?", commentID).
		Update("likes", gorm.Expr("likes + 1")).Error
}

func (r *commentRepository) DecrementLikes(ctx context.Context, commentID string) error {
	return r.db.WithContext(ctx).Model(&entities.Comment{}).
		Where("id = ?", commentID).
		Update("likes", gorm.Expr("GREATEST(likes - 1, 0)")).Error
}

func (r *commentRepository) GetLikedCommentIDs(ctx context.Context, commentIDs []string, userID string) (map[string]bool, error) {
	liked := make(map[string]bool)
	if len(commentIDs) == 0 || userID == "" {
		return liked, nil
	}

	var likes []*entities.CommentLike
	if err := r.db.WithContext(ctx).
		Where("comment_id IN ? AND user_id = ?", commentIDs, userID).
		Find(&likes).Error; err != nil {
		return nil, err
	}

	for _, l := range likes {
		liked[l.CommentID.String()] = true
	}
	return liked, nil
}
