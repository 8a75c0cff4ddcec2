package rating

import (
	"context"
	"streetbite-backend/domain"
	"streetbite-backend/entities"
	"streetbite-backend/pkg/vendor"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRatingRepository struct {
	ratings   map[string]*entities.Rating // keyed by userID|vendorID
	summaries map[string]VendorAggregate
	raceOnce  *entities.Rating // injected as a concurrent insert on first Create
}

func newFakeRatingRepository() *fakeRatingRepository {
	return &fakeRatingRepository{
		ratings:   make(map[string]*entities.Rating),
		summaries: make(map[string]VendorAggregate),
	}
}

func pairKey(userID, vendorID string) string {
	return userID + "|" + vendorID
}

func (f *fakeRatingRepository) CreateRating(ctx context.Context, rating *entities.Rating) error {
	key := pairKey(rating.UserID.String(), rating.VendorID.String())
	if f.raceOnce != nil {
		f.ratings[pairKey(f.raceOnce.UserID.String(), f.raceOnce.VendorID.String())] = f.raceOnce
		f.raceOnce = nil
		return gorm.ErrDuplicatedKey
	}
	if _, ok := f.ratings[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	f.ratings[key] = rating
	return nil
}

func (f *fakeRatingRepository) UpdateRating(ctx context.Context, rating *entities.Rating) error {
	f.ratings[pairKey(rating.UserID.String(), rating.VendorID.String())] = rating
	return nil
}

func (f *fakeRatingRepository) GetRatingByPair(ctx context.Context, userID, vendorID string) (*entities.Rating, error) {
	if r, ok := f.ratings[pairKey(userID, vendorID)]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRatingRepository) GetRatingsByVendor(ctx context.Context, vendorID string, page, limit int) ([]*entities.Rating, int64, error) {
	var out []*entities.Rating
	for _, r := range f.ratings {
		if r.VendorID.String() == vendorID {
			out = append(out, r)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeRatingRepository) AggregateByVendor(ctx context.Context, vendorID string) (VendorAggregate, error) {
	var sum float64
	var count int64
	for _, r := range f.ratings {
		if r.VendorID.String() == vendorID {
			sum += float64(r.Value)
			count++
		}
	}
	if count == 0 {
		return VendorAggregate{}, nil
	}
	return VendorAggregate{Average: sum / float64(count), Count: count}, nil
}

func (f *fakeRatingRepository) UpdateVendorSummary(ctx context.Context, vendorID string, average float64, count int64) error {
	f.summaries[vendorID] = VendorAggregate{Average: average, Count: count}
	return nil
}

type fakeVendorRepository struct {
	vendors map[string]*entities.Vendor
}

func (f *fakeVendorRepository) CreateVendor(ctx context.Context, v *entities.Vendor) error {
	return nil
}

func (f *fakeVendorRepository) GetVendorByID(ctx context.Context, id string) (*entities.Vendor, error) {
	if v, ok := f.vendors[id]; ok {
		return v, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeVendorRepository) GetVendorByUserID(ctx context.Context, userID string) (*entities.Vendor, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeVendorRepository) UpdateVendor(ctx context.Context, v *entities.Vendor) error {
	return nil
}

func (f *fakeVendorRepository) UpdateVendorPincode(ctx context.Context, id, pincode string) error {
	return nil
}

func (f *fakeVendorRepository) FindVendors(ctx context.Context, filter domain.VendorFilter, limit int) ([]*entities.Vendor, error) {
	return nil, nil
}

func (f *fakeVendorRepository) GetMenuItemsByVendorIDs(ctx context.Context, vendorIDs []uuid.UUID) ([]*entities.MenuItem, error) {
	return nil, nil
}

func (f *fakeVendorRepository) AddVendorImage(ctx context.Context, image *entities.VendorImage) error {
	return nil
}

func (f *fakeVendorRepository) CountVendorImages(ctx context.Context, vendorID string) (int64, error) {
	return 0, nil
}

func (f *fakeVendorRepository) GetVendorImageByID(ctx context.Context, id string) (*entities.VendorImage, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeVendorRepository) DeleteVendorImage(ctx context.Context, id string) error { return nil }

var _ vendor.VendorRepository = (*fakeVendorRepository)(nil)

func newRatingFixture(t *testing.T) (RatingService, *fakeRatingRepository, string) {
	t.Helper()
	vendorID := uuid.New()
	vendorRepo := &fakeVendorRepository{vendors: map[string]*entities.Vendor{
		vendorID.String(): {ID: vendorID, BusinessName: "Chaat Corner"},
	}}
	ratingRepo := newFakeRatingRepository()
	return NewRatingService(ratingRepo, vendorRepo), ratingRepo, vendorID.String()
}

func strPtr(s string) *string { return &s }

func TestSubmitRatingFirstRating(t *testing.T) {
	svc, repo, vendorID := newRatingFixture(t)
	userID := uuid.New().String()

	snapshot, err := svc.SubmitRating(context.Background(), domain.SubmitRatingRequest{
		VendorID: vendorID,
		Value:    4,
		Review:   strPtr("solid chaat"),
	}, userID)
	require.NoError(t, err)

	assert.Equal(t, 4.0, snapshot.Ratings.Average)
	assert.Equal(t, int64(1), snapshot.Ratings.Count)
	assert.Equal(t, 4, snapshot.Own.Value)
	assert.Equal(t, "solid chaat", snapshot.Own.Review)
	assert.Equal(t, 4.0, repo.summaries[vendorID].Average)
}

func TestSubmitRatingOverwritesInPlace(t *testing.T) {
	svc, repo, vendorID := newRatingFixture(t)
	userID := uuid.New().String()

	_, err := svc.SubmitRating(context.Background(), domain.SubmitRatingRequest{
		VendorID: vendorID, Value: 4, Review: strPtr("good"),
	}, userID)
	require.NoError(t, err)

	snapshot, err := svc.SubmitRating(context.Background(), domain.SubmitRatingRequest{
		VendorID: vendorID, Value: 2,
	}, userID)
	require.NoError(t, err)

	assert.Equal(t, int64(1), snapshot.Ratings.Count)
	assert.Equal(t, 2.0, snapshot.Ratings.Average)
	// A request without a review keeps the stored one.
	assert.Equal(t, "good", snapshot.Own.Review)
	assert.Len(t, repo.ratings, 1)
}

func TestSubmitRatingAverageRoundsToOneDecimal(t *testing.T) {
	svc, _, vendorID := newRatingFixture(t)

	for _, value := range []int{5, 4, 4} {
		_, err := svc.SubmitRating(context.Background(), domain.SubmitRatingRequest{
			VendorID: vendorID, Value: value,
		}, uuid.New().String())
		require.NoError(t, err)
	}

	snapshot, err := svc.SubmitRating(context.Background(), domain.SubmitRatingRequest{
		VendorID: vendorID, Value: 4,
	}, uuid.New().String())
	require.NoError(t, err)

	// (5+4+4+4)/4 = 4.25, rounded to 4.3.
	assert.Equal(t, 4.3, snapshot.Ratings.Average)
	assert.Equal(t, int64(4), snapshot.Ratings.Count)
}

func TestSubmitRatingRejectsOutOfRangeValue(t *testing.T) {
	svc, _, vendorID := newRatingFixture(t)

	for _, value := range []int{0, 6, -1} {
		_, err := svc.SubmitRating(context.Background(), domain.SubmitRatingRequest{
			VendorID: vendorID, Value: value,
		}, uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrInvalidRatingValue)
	}
}

func TestSubmitRatingUnknownVendor(t *testing.T) {
	svc, _, _ := newRatingFixture(t)

	_, err := svc.SubmitRating(context.Background(), domain.SubmitRatingRequest{
		VendorID: uuid.New().String(), Value: 3,
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrVendorNotFound)
}

func TestSubmitRatingFoldsConcurrentInsertIntoUpdate(t *testing.T) {
	svc, repo, vendorID := newRatingFixture(t)
	userID := uuid.New()
	vendorUUID := uuid.MustParse(vendorID)

	// Another request for the same pair lands between the existence check
	// and the insert.
	repo.raceOnce = &entities.Rating{
		ID:       uuid.New(),
		UserID:   userID,
		VendorID: vendorUUID,
		Value:    3,
	}

	snapshot, err := svc.SubmitRating(context.Background(), domain.SubmitRatingRequest{
		VendorID: vendorID, Value: 5,
	}, userID.String())
	require.NoError(t, err)

	assert.Equal(t, int64(1), snapshot.Ratings.Count)
	assert.Equal(t, 5.0, snapshot.Ratings.Average)
	assert.Len(t, repo.ratings, 1)
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 4.3, round1(4.25))
	assert.Equal(t, 4.2, round1(4.24))
	assert.Equal(t, 0.0, round1(0))
	assert.Equal(t, 5.0, round1(4.96))
}
