package area

import (
	"context"
	"math"
	"streetbite-backend/domain"
	"streetbite-backend/entities"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeAreaRepository struct {
	areas []*entities.PostalArea
}

func (f *fakeAreaRepository) FindNearest(ctx context.Context, lat, lng float64, radiusKM float64) (*entities.PostalArea, error) {
	var nearest *entities.PostalArea
	best := math.MaxFloat64
	for _, a := range f.areas {
		d := roughDistanceKM(lat, lng, a.Latitude, a.Longitude)
		if d <= radiusKM && d < best {
			best = d
			nearest = a
		}
	}
	if nearest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return nearest, nil
}

func (f *fakeAreaRepository) GetByPincode(ctx context.Context, pincode string) (*entities.PostalArea, error) {
	for _, a := range f.areas {
		if a.Pincode == pincode {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAreaRepository) GetByPincodes(ctx context.Context, pincodes []string) ([]*entities.PostalArea, error) {
	wanted := make(map[string]bool, len(pincodes))
	for _, p := range pincodes {
		wanted[p] = true
	}
	var out []*entities.PostalArea
	for _, a := range f.areas {
		if wanted[a.Pincode] {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAreaRepository) CountAreas(ctx context.Context) (int64, error) {
	return int64(len(f.areas)), nil
}

func (f *fakeAreaRepository) CreateArea(ctx context.Context, area *entities.PostalArea) error {
	f.areas = append(f.areas, area)
	return nil
}

// roughDistanceKM is an equirectangular approximation, good enough for
// test distances of a few kilometres.
func roughDistanceKM(lat1, lng1, lat2, lng2 float64) float64 {
	const kmPerDegree = 111.0
	dLat := (lat2 - lat1) * kmPerDegree
	dLng := (lng2 - lng1) * kmPerDegree * math.Cos(lat1*math.Pi/180)
	return math.Sqrt(dLat*dLat + dLng*dLng)
}

func newAreaFixture() AreaService {
	repo := &fakeAreaRepository{areas: []*entities.PostalArea{
		{Pincode: "560034", AreaName: "Koramangala", Latitude: 12.9352, Longitude: 77.6245},
		{Pincode: "560001", AreaName: "MG Road", Latitude: 12.9758, Longitude: 77.6045},
	}}
	return NewAreaService(repo)
}

func TestResolveFindsNearestArea(t *testing.T) {
	svc := newAreaFixture()

	// A point a few hundred metres from Koramangala.
	resp, err := svc.Resolve(context.Background(), 12.9360, 77.6250)
	require.NoError(t, err)
	assert.Equal(t, "560034", resp.Pincode)
	assert.Equal(t, "Koramangala", resp.AreaName)
}

func TestResolveNothingWithinRadius(t *testing.T) {
	svc := newAreaFixture()

	// Chennai, far beyond the search radius of the seeded Bengaluru areas.
	_, err := svc.Resolve(context.Background(), 13.0827, 80.2707)
	assert.ErrorIs(t, err, domain.ErrAreaNotFound)
}

func TestResolveRejectsOutOfRangeCoordinates(t *testing.T) {
	svc := newAreaFixture()

	_, err := svc.Resolve(context.Background(), 91, 77.6)
	assert.ErrorIs(t, err, domain.ErrInvalidCoordinate)

	_, err = svc.Resolve(context.Background(), 12.9, 181)
	assert.ErrorIs(t, err, domain.ErrInvalidCoordinate)

	_, err = svc.Resolve(context.Background(), -91, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidCoordinate)
}

func TestAreaNamesSkipsUnknownPincodes(t *testing.T) {
	svc := newAreaFixture()

	names, err := svc.AreaNames(context.Background(), []string{"560034", "000000"})
	require.NoError(t, err)
	assert.Equal(t, "Koramangala", names["560034"])
	_, ok := names["000000"]
	assert.False(t, ok)
}
