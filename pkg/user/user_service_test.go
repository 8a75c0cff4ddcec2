package user

import (
	"context"
	"streetbite-backend/domain"
	"streetbite-backend/entities"
	"streetbite-backend/pkg/jwt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	byID      map[string]*entities.User
	byEmail   map[string]*entities.User
	createErr error
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		byID:    make(map[string]*entities.User),
		byEmail: make(map[string]*entities.User),
	}
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, u *entities.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.byID[u.ID.String()] = u
	return nil
}

func (f *fakeUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) UpdateUser(ctx context.Context, u *entities.User) error {
	f.byID[u.ID.String()] = u
	f.byEmail[u.Email] = u
	return nil
}

func newUserFixture() (UserService, *fakeUserRepository) {
	repo := newFakeUserRepository()
	return NewUserService(repo, jwt.NewJWTService()), repo
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc, _ := newUserFixture()

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret123",
		Role:     "admin",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, repo := newUserFixture()

	resp, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret123",
		Phone:    "9876543210",
		Pincode:  "560001",
		Role:     domain.RoleCustomer,
	})
	require.NoError(t, err)

	stored := repo.byID[resp.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
	assert.False(t, resp.IsVerified)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, repo := newUserFixture()
	repo.createErr = gorm.ErrDuplicatedKey

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret123",
		Role:     domain.RoleVendor,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, repo := newUserFixture()

	hashed, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.DefaultCost)
	require.NoError(t, err)
	repo.byEmail["asha@example.com"] = &entities.User{
		ID:       uuid.New(),
		Email:    "asha@example.com",
		Password: string(hashed),
		Role:     domain.RoleCustomer,
	}

	_, err = svc.Login(context.Background(), domain.LoginRequest{
		Email: "asha@example.com", Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrWrongCredentials)

	_, err = svc.Login(context.Background(), domain.LoginRequest{
		Email: "nobody@example.com", Password: "whatever",
	})
	assert.ErrorIs(t, err, domain.ErrWrongCredentials)
}

func TestLoginReturnsTokenAndRole(t *testing.T) {
	svc, repo := newUserFixture()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	repo.byEmail["ravi@example.com"] = &entities.User{
		ID:       uuid.New(),
		Email:    "ravi@example.com",
		Password: string(hashed),
		Role:     domain.RoleVendor,
	}

	resp, err := svc.Login(context.Background(), domain.LoginRequest{
		Email: "ravi@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleVendor, resp.Role)
	assert.NotEmpty(t, resp.Token)
}

func TestVerifyEmailMarksAccountVerified(t *testing.T) {
	jwtService := jwt.NewJWTService()
	repo := newFakeUserRepository()
	svc := NewUserService(repo, jwtService)

	u := &entities.User{ID: uuid.New(), Email: "ravi@example.com"}
	repo.byID[u.ID.String()] = u
	repo.byEmail[u.Email] = u

	token, err := jwtService.GenerateTokenVerify(map[string]any{"email": u.Email}, time.Hour)
	require.NoError(t, err)

	require.NoError(t, svc.VerifyEmail(context.Background(), token))
	assert.True(t, repo.byID[u.ID.String()].IsVerified)
}

func TestVerifyEmailRejectsGarbageToken(t *testing.T) {
	svc, _ := newUserFixture()

	err := svc.VerifyEmail(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, domain.ErrVerificationExpired)
}

func TestUpdateUserPartialFields(t *testing.T) {
	svc, repo := newUserFixture()

	u := &entities.User{ID: uuid.New(), Name: "Old", Phone: "9876543210", Pincode: "110001"}
	repo.byID[u.ID.String()] = u

	err := svc.UpdateUser(context.Background(), domain.UpdateUserRequest{Pincode: "110016"}, u.ID.String())
	require.NoError(t, err)

	assert.Equal(t, "Old", u.Name)
	assert.Equal(t, "110016", u.Pincode)
}
