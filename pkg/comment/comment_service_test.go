package comment

import (
	"context"
	"sort"
	"streetbite-backend/domain"
	"streetbite-backend/entities"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCommentRepository struct {
	comments map[string]*entities.Comment
	likes    map[string]*entities.CommentLike // keyed by commentID|userID
}

func newFakeCommentRepository() *fakeCommentRepository {
	return &fakeCommentRepository{
		comments: make(map[string]*entities.Comment),
		likes:    make(map[string]*entities.CommentLike),
	}
}

func likeKey(commentID, userID string) string {
	return commentID + "|" + userID
}

func (f *fakeCommentRepository) CreateComment(ctx context.Context, c *entities.Comment) error {
	f.comments[c.ID.String()] = c
	return nil
}

func (f *fakeCommentRepository) GetCommentByID(ctx context.Context, id string) (*entities.Comment, error) {
	if c, ok := f.comments[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCommentRepository) DeleteComment(ctx context.Context, id string) error {
	delete(f.comments, id)
	return nil
}

func (f *fakeCommentRepository) ListGeneralByPincode(ctx context.Context, pincode string, sortBy string, limit int) ([]*entities.Comment, error) {
	var out []*entities.Comment
	for _, c := range f.comments {
		if c.VendorProfileID != nil {
			continue
		}
		if pincode != "" && c.Pincode != pincode {
			continue
		}
		out = append(out, c)
	}
	if sortBy == domain.CommentSortLikes {
		sort.Slice(out, func(i, j int) bool { return out[i].Likes > out[j].Likes })
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeCommentRepository) ListByVendorProfile(ctx context.Context, vendorID string, limit int) ([]*entities.Comment, error) {
	var out []*entities.Comment
	for _, c := range f.comments {
		if c.VendorProfileID != nil && c.VendorProfileID.String() == vendorID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCommentRepository) CreateLike(ctx context.Context, like *entities.CommentLike) error {
	key := likeKey(like.CommentID.String(), like.UserID.String())
	if _, ok := f.likes[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	f.likes[key] = like
	return nil
}

func (f *fakeCommentRepository) DeleteLike(ctx context.Context, commentID, userID string) (int64, error) {
	key := likeKey(commentID, userID)
	if _, ok := f.likes[key]; !ok {
		return 0, nil
	}
	delete(f.likes, key)
	return 1, nil
}

func (f *fakeCommentRepository) IncrementLikes(ctx context.Context, commentID string) error {
	f.comments[commentID].Likes++
	return nil
}

func (f *fakeCommentRepository) DecrementLikes(ctx context.Context, commentID string) error {
	if f.comments[commentID].Likes > 0 {
		f.comments[commentID].Likes--
	}
	return nil
}

func (f *fakeCommentRepository) GetLikedCommentIDs(ctx context.Context, commentIDs []string, userID string) (map[string]bool, error) {
	liked := make(map[string]bool)
	for _, id := range commentIDs {
		if _, ok := f.likes[likeKey(id, userID)]; ok {
			liked[id] = true
		}
	}
	return liked, nil
}

type stubUserRepository struct {
	users map[string]*entities.User
}

func (s *stubUserRepository) CreateUser(ctx context.Context, u *entities.User) error { return nil }

func (s *stubUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepository) UpdateUser(ctx context.Context, u *entities.User) error { return nil }

type stubVendorRepository struct {
	vendors map[string]*entities.Vendor
}

func (s *stubVendorRepository) CreateVendor(ctx context.Context, v *entities.Vendor) error {
	return nil
}

func (s *stubVendorRepository) GetVendorByID(ctx context.Context, id string) (*entities.Vendor, error) {
	if v, ok := s.vendors[id]; ok {
		return v, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubVendorRepository) GetVendorByUserID(ctx context.Context, userID string) (*entities.Vendor, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubVendorRepository) UpdateVendor(ctx context.Context, v *entities.Vendor) error {
	return nil
}

func (s *stubVendorRepository) UpdateVendorPincode(ctx context.Context, id, pincode string) error {
	return nil
}

func (s *stubVendorRepository) FindVendors(ctx context.Context, filter domain.VendorFilter, limit int) ([]*entities.Vendor, error) {
	return nil, nil
}

func (s *stubVendorRepository) GetMenuItemsByVendorIDs(ctx context.Context, vendorIDs []uuid.UUID) ([]*entities.MenuItem, error) {
	return nil, nil
}

func (s *stubVendorRepository) AddVendorImage(ctx context.Context, image *entities.VendorImage) error {
	return nil
}

func (s *stubVendorRepository) CountVendorImages(ctx context.Context, vendorID string) (int64, error) {
	return 0, nil
}

func (s *stubVendorRepository) GetVendorImageByID(ctx context.Context, id string) (*entities.VendorImage, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubVendorRepository) DeleteVendorImage(ctx context.Context, id string) error { return nil }

type stubVendorService struct {
	profile *entities.Vendor
}

func (s *stubVendorService) CreateVendor(ctx context.Context, req domain.CreateVendorRequest, userID string) (domain.VendorResponse, error) {
	return domain.VendorResponse{}, nil
}

func (s *stubVendorService) EnsureVendorProfile(ctx context.Context, userID string) (*entities.Vendor, error) {
	return s.profile, nil
}

func (s *stubVendorService) GetVendorByID(ctx context.Context, id string) (domain.VendorResponse, error) {
	return domain.VendorResponse{}, nil
}

func (s *stubVendorService) GetOwnVendor(ctx context.Context, userID string) (domain.VendorResponse, error) {
	return domain.VendorResponse{}, nil
}

func (s *stubVendorService) UpdateVendor(ctx context.Context, req domain.UpdateVendorRequest, userID string) error {
	return nil
}

func (s *stubVendorService) UpdateLocation(ctx context.Context, req domain.UpdateLocationRequest, userID string) (domain.VendorResponse, error) {
	return domain.VendorResponse{}, nil
}

func (s *stubVendorService) ListVendors(ctx context.Context, filter domain.VendorFilter) ([]domain.EnrichedVendor, error) {
	return nil, nil
}

func (s *stubVendorService) UploadVendorImage(ctx context.Context, req domain.UploadVendorImageRequest, userID string) (string, error) {
	return "", nil
}

func (s *stubVendorService) DeleteVendorImage(ctx context.Context, imageID string, userID string) error {
	return nil
}

type commentFixture struct {
	svc      CommentService
	repo     *fakeCommentRepository
	customer *entities.User
	vendor   *entities.Vendor
}

func newCommentFixture() *commentFixture {
	customer := &entities.User{
		ID:      uuid.New(),
		Name:    "Priya",
		Role:    domain.RoleCustomer,
		Pincode: "560034",
	}
	v := &entities.Vendor{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		BusinessName: "Vada Pav Express",
		Pincode:      "400050",
		Status:       domain.VendorStatusOpen,
	}

	repo := newFakeCommentRepository()
	users := &stubUserRepository{users: map[string]*entities.User{customer.ID.String(): customer}}
	vendors := &stubVendorRepository{vendors: map[string]*entities.Vendor{v.ID.String(): v}}
	vendorSvc := &stubVendorService{profile: v}

	return &commentFixture{
		svc:      NewCommentService(repo, users, vendorSvc, vendors),
		repo:     repo,
		customer: customer,
		vendor:   v,
	}
}

func TestPostCommentVendorRoleRejected(t *testing.T) {
	fx := newCommentFixture()

	_, err := fx.svc.PostComment(context.Background(), domain.PostCommentRequest{
		Content: "hi", Pincode: "560034",
	}, fx.customer.ID.String(), domain.RoleVendor)
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
}

func TestPostCommentRejectsShortPincode(t *testing.T) {
	fx := newCommentFixture()

	_, err := fx.svc.PostComment(context.Background(), domain.PostCommentRequest{
		Content: "anyone tried the new stall?", Pincode: "12345",
	}, fx.customer.ID.String(), domain.RoleCustomer)
	assert.ErrorIs(t, err, domain.ErrInvalidPincode)
}

func TestPostCommentSnapshotsAuthorName(t *testing.T) {
	fx := newCommentFixture()

	resp, err := fx.svc.PostComment(context.Background(), domain.PostCommentRequest{
		Content: "great chai near the metro", Pincode: "560034",
	}, fx.customer.ID.String(), domain.RoleCustomer)
	require.NoError(t, err)

	assert.Equal(t, "Priya", resp.AuthorName)
	assert.Equal(t, "560034", resp.Pincode)
}

func TestVendorTargetedCommentInheritsPincodeAndStaysOutOfAreaFeed(t *testing.T) {
	fx := newCommentFixture()

	targeted, err := fx.svc.PostComment(context.Background(), domain.PostCommentRequest{
		Content:         "best vada pav in bandra",
		Pincode:         "999999", // ignored in favor of the vendor's pincode
		VendorProfileID: fx.vendor.ID.String(),
	}, fx.customer.ID.String(), domain.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, fx.vendor.Pincode, targeted.Pincode)

	_, err = fx.svc.PostComment(context.Background(), domain.PostCommentRequest{
		Content: "general area talk", Pincode: "400050",
	}, fx.customer.ID.String(), domain.RoleCustomer)
	require.NoError(t, err)

	area, err := fx.svc.ListAreaComments(context.Background(), "400050", domain.CommentSortRecent, fx.customer.ID.String())
	require.NoError(t, err)
	require.Len(t, area, 1)
	assert.Equal(t, "general area talk", area[0].Content)

	vendorFeed, err := fx.svc.ListVendorComments(context.Background(), fx.vendor.ID.String(), fx.customer.ID.String())
	require.NoError(t, err)
	require.Len(t, vendorFeed, 1)
	assert.Equal(t, "best vada pav in bandra", vendorFeed[0].Content)
}

func TestPostCommentUnknownVendorTarget(t *testing.T) {
	fx := newCommentFixture()

	_, err := fx.svc.PostComment(context.Background(), domain.PostCommentRequest{
		Content:         "where did they go",
		VendorProfileID: uuid.New().String(),
	}, fx.customer.ID.String(), domain.RoleCustomer)
	assert.ErrorIs(t, err, domain.ErrVendorNotFound)
}

func TestListAreaCommentsRejectsBadPincode(t *testing.T) {
	fx := newCommentFixture()

	_, err := fx.svc.ListAreaComments(context.Background(), "4000", domain.CommentSortRecent, fx.customer.ID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidPincode)
}

func TestListVendorAreaCommentsUsesProfilePincode(t *testing.T) {
	fx := newCommentFixture()

	_, err := fx.svc.PostComment(context.Background(), domain.PostCommentRequest{
		Content: "near the vendor", Pincode: fx.vendor.Pincode,
	}, fx.customer.ID.String(), domain.RoleCustomer)
	require.NoError(t, err)

	_, err = fx.svc.PostComment(context.Background(), domain.PostCommentRequest{
		Content: "somewhere else", Pincode: "560034",
	}, fx.customer.ID.String(), domain.RoleCustomer)
	require.NoError(t, err)

	feed, err := fx.svc.ListVendorAreaComments(context.Background(), fx.vendor.UserID.String(), domain.RoleVendor)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "near the vendor", feed[0].Content)

	_, err = fx.svc.ListVendorAreaComments(context.Background(), fx.customer.ID.String(), domain.RoleCustomer)
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
}

func TestToggleLikeRoundTrip(t *testing.T) {
	fx := newCommentFixture()

	posted, err := fx.svc.PostComment(context.Background(), domain.PostCommentRequest{
		Content: "likeable", Pincode: "560034",
	}, fx.customer.ID.String(), domain.RoleCustomer)
	require.NoError(t, err)

	likerID := uuid.New().String()

	liked, err := fx.svc.ToggleLike(context.Background(), posted.ID, likerID)
	require.NoError(t, err)
	assert.True(t, liked.Liked)
	assert.Equal(t, 1, liked.Likes)

	unliked, err := fx.svc.ToggleLike(context.Background(), posted.ID, likerID)
	require.NoError(t, err)
	assert.False(t, unliked.Liked)
	assert.Equal(t, 0, unliked.Likes)
}

func TestToggleLikeUnknownComment(t *testing.T) {
	fx := newCommentFixture()

	_, err := fx.svc.ToggleLike(context.Background(), uuid.New().String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrCommentNotFound)
}

func TestDeleteCommentAuthorOnly(t *testing.T) {
	fx := newCommentFixture()

	posted, err := fx.svc.PostComment(context.Background(), domain.PostCommentRequest{
		Content: "deletable", Pincode: "560034",
	}, fx.customer.ID.String(), domain.RoleCustomer)
	require.NoError(t, err)

	err = fx.svc.DeleteComment(context.Background(), posted.ID, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotCommentAuthor)

	err = fx.svc.DeleteComment(context.Background(), posted.ID, fx.customer.ID.String())
	require.NoError(t, err)
	assert.Empty(t, fx.repo.comments)
}
