package auth

import (
	"context"
	"fmt"
	"testing"

	"campusspaces/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 101
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type fakeJWT struct{}

func (fakeJWT) GenerateToken(userID int64, email, role string) (string, error) {
	return fmt.Sprintf("token-%d-%s", userID, role), nil
}

func TestService_Register_Success(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, fakeJWT{})

	repo.On("ExistsByEmail", mock.Anything, "maria@campus.edu").Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	user, token, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Maria Fuentes",
		Email:    "Maria@Campus.edu",
		Password: "secret1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "maria@campus.edu", user.Email)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.Empty(t, user.PasswordHash)
	assert.Equal(t, "token-101-user", token)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, fakeJWT{})

	repo.On("ExistsByEmail", mock.Anything, "maria@campus.edu").Return(true, nil)

	_, _, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Maria Fuentes",
		Email:    "maria@campus.edu",
		Password: "secret1",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Login_Success(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, fakeJWT{})

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	repo.On("GetByEmail", mock.Anything, "maria@campus.edu").Return(&domain.User{
		ID:           7,
		Email:        "maria@campus.edu",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}, nil)

	user, token, err := svc.Login(context.Background(), LoginRequest{
		Email:    "maria@campus.edu",
		Password: "secret1",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Empty(t, user.PasswordHash)
	assert.Equal(t, "token-7-user", token)
}

func TestService_Login_WrongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, fakeJWT{})

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	repo.On("GetByEmail", mock.Anything, "maria@campus.edu").Return(&domain.User{
		ID:           7,
		Email:        "maria@campus.edu",
		PasswordHash: string(hash),
	}, nil)

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "maria@campus.edu",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, fakeJWT{})

	repo.On("GetByEmail", mock.Anything, "nobody@campus.edu").Return(nil, gorm.ErrRecordNotFound)

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@campus.edu",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
