package menu

import (
	"context"
	"streetbite-backend/domain"
	"streetbite-backend/entities"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMenuRepository struct {
	items map[string]*entities.MenuItem
}

func newFakeMenuRepository() *fakeMenuRepository {
	return &fakeMenuRepository{items: make(map[string]*entities.MenuItem)}
}

func (f *fakeMenuRepository) AddMenuItem(ctx context.Context, item *entities.MenuItem) error {
	f.items[item.ID.String()] = item
	return nil
}

func (f *fakeMenuRepository) GetMenuItemByID(ctx context.Context, id string) (*entities.MenuItem, error) {
	if item, ok := f.items[id]; ok {
		return item, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMenuRepository) UpdateMenuItem(ctx context.Context, item *entities.MenuItem) error {
	f.items[item.ID.String()] = item
	return nil
}

func (f *fakeMenuRepository) DeleteMenuItem(ctx context.Context, id string) error {
	delete(f.items, id)
	return nil
}

func (f *fakeMenuRepository) GetMenuItemsByVendor(ctx context.Context, vendorID string) ([]*entities.MenuItem, error) {
	var out []*entities.MenuItem
	for _, item := range f.items {
		if item.VendorID.String() == vendorID {
			out = append(out, item)
		}
	}
	return out, nil
}

type stubVendorRepository struct {
	vendors map[string]*entities.Vendor
}

func (s *stubVendorRepository) CreateVendor(ctx context.Context, v *entities.Vendor) error {
	return nil
}

func (s *stubVendorRepository) GetVendorByID(ctx context.Context, id string) (*entities.Vendor, error) {
	for _, v := range s.vendors {
		if v.ID.String() == id {
			return v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubVendorRepository) GetVendorByUserID(ctx context.Context, userID string) (*entities.Vendor, error) {
	if v, ok := s.vendors[userID]; ok {
		return v, nil
	}
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

func newMenuFixture() (MenuService, *fakeMenuRepository, *entities.Vendor, *entities.Vendor) {
	owner := &entities.Vendor{ID: uuid.New(), UserID: uuid.New(), BusinessName: "Roll House"}
	other := &entities.Vendor{ID: uuid.New(), UserID: uuid.New(), BusinessName: "Juice Bar"}
	repo := newFakeMenuRepository()
	vendors := &stubVendorRepository{vendors: map[string]*entities.Vendor{
		owner.UserID.String(): owner,
		other.UserID.String(): other,
	}}
	return NewMenuService(repo, vendors), repo, owner, other
}

func TestAddMenuItem(t *testing.T) {
	svc, repo, owner, _ := newMenuFixture()

	item, err := svc.AddMenuItem(context.Background(), domain.AddMenuItemRequest{
		Name:        "Egg Roll",
		Price:       60,
		Category:    "rolls",
		IsAvailable: true,
	}, owner.UserID.String())
	require.NoError(t, err)

	assert.Equal(t, owner.ID.String(), item.VendorID)
	assert.Equal(t, 60.0, item.Price)
	assert.Len(t, repo.items, 1)
}

func TestAddMenuItemRejectsNegativePrice(t *testing.T) {
	svc, _, owner, _ := newMenuFixture()

	_, err := svc.AddMenuItem(context.Background(), domain.AddMenuItemRequest{
		Name: "Free Lunch", Price: -1,
	}, owner.UserID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestUpdateMenuItemOwnershipEnforced(t *testing.T) {
	svc, _, owner, other := newMenuFixture()

	item, err := svc.AddMenuItem(context.Background(), domain.AddMenuItemRequest{
		Name: "Paneer Roll", Price: 80,
	}, owner.UserID.String())
	require.NoError(t, err)

	newPrice := 90.0
	err = svc.UpdateMenuItem(context.Background(), item.ID, domain.UpdateMenuItemRequest{
		Price: &newPrice,
	}, other.UserID.String())
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)

	err = svc.UpdateMenuItem(context.Background(), item.ID, domain.UpdateMenuItemRequest{
		Price: &newPrice,
	}, owner.UserID.String())
	require.NoError(t, err)

	menu, err := svc.GetVendorMenu(context.Background(), owner.ID.String())
	require.NoError(t, err)
	require.Len(t, menu, 1)
	assert.Equal(t, 90.0, menu[0].Price)
}

func TestDeleteMenuItemUnknownID(t *testing.T) {
	svc, _, owner, _ := newMenuFixture()

	err := svc.DeleteMenuItem(context.Background(), uuid.New().String(), owner.UserID.String())
	assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)
}

func TestGetVendorMenuUnknownVendor(t *testing.T) {
	svc, _, _, _ := newMenuFixture()

	_, err := svc.GetVendorMenu(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrVendorNotFound)
}
