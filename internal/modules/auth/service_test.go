package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"pgconnect/internal/domain"
	"pgconnect/internal/repository"
)

// Mock User Repository implementing the interface
type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

// Mock JWT service
type mockJWTService struct {
	mock.Mock
}

func (m *mockJWTService) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func TestService_RegisterStudent_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)

	userRepo.On("ExistsByEmail", mock.Anything, "test@example.com").Return(false, nil)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	jwtSvc.On("GenerateToken", mock.Anything, "student").Return("fake-jwt-token", nil)

	service := NewService(userRepo, jwtSvc)

	user, token, err := service.RegisterStudent(context.Background(), RegisterStudentRequest{
		Name:     "Test Student",
		Email:    "Test@Example.com",
		Phone:    "+919812345678",
		Password: "securepass123",
		College:  "Delhi University",
	})

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, domain.RoleStudent, user.Role)
	assert.Empty(t, user.PasswordHash)
	assert.Equal(t, "fake-jwt-token", token)

	userRepo.AssertExpectations(t)
	jwtSvc.AssertExpectations(t)
}

func TestService_RegisterStudent_EmailExists(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)

	userRepo.On("ExistsByEmail", mock.Anything, "exists@example.com").Return(true, nil)

	service := NewService(userRepo, jwtSvc)

	_, _, err := service.RegisterStudent(context.Background(), RegisterStudentRequest{
		Email: "exists@example.com",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestService_RegisterOwner_DuplicateRace(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)

	// exists check passes, insert still hits the unique index
	userRepo.On("ExistsByEmail", mock.Anything, "race@example.com").Return(false, nil)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

	service := NewService(userRepo, jwtSvc)

	_, _, err := service.RegisterOwner(context.Background(), RegisterOwnerRequest{
		Name:     "Owner",
		Email:    "race@example.com",
		Phone:    "+919800000000",
		Password: "password1",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestService_Login_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	existingUser := &domain.User{
		ID:           10,
		Email:        "user@example.com",
		PasswordHash: string(hashed),
		Role:         domain.RoleStudent,
	}

	userRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(existingUser, nil)
	jwtSvc.On("GenerateToken", int64(10), "student").Return("login-token", nil)

	service := NewService(userRepo, jwtSvc)

	user, token, err := service.Login(context.Background(), LoginRequest{
		Email:    "user@example.com",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "login-token", token)
	assert.Empty(t, user.PasswordHash)
}

func TestService_Login_WrongPassword(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("rightpassword"), bcrypt.DefaultCost)
	existingUser := &domain.User{
		ID:           10,
		Email:        "user@example.com",
		PasswordHash: string(hashed),
		Role:         domain.RoleStudent,
	}

	userRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(existingUser, nil)

	service := NewService(userRepo, jwtSvc)

	_, _, err := service.Login(context.Background(), LoginRequest{
		Email:    "user@example.com",
		Password: "wrongpassword",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)

	userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, repository.ErrNotFound)

	service := NewService(userRepo, jwtSvc)

	_, _, err := service.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	// unknown email and wrong password are indistinguishable to the caller
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_UpdateProfile(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)

	existing := &domain.User{ID: 5, Name: "Old Name", Phone: "+911111111111", Role: domain.RoleStudent}
	userRepo.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	userRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(userRepo, jwtSvc)

	user, err := service.UpdateProfile(context.Background(), 5, UpdateProfileRequest{
		Name:    "New Name",
		College: "IIT Bombay",
	})

	assert.NoError(t, err)
	assert.Equal(t, "New Name", user.Name)
	assert.Equal(t, "IIT Bombay", user.College)
	// untouched fields keep their value
	assert.Equal(t, "+911111111111", user.Phone)
}
