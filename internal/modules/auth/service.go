package auth

import (
	"context"
	"errors"
	"strings"

	"pgconnect/internal/domain"
	"pgconnect/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}

// Service contains all business logic for authentication
type Service struct {
	users UserRepositoryInterface
	jwt   jwtService
}

func NewService(users UserRepositoryInterface, jwt jwtService) *Service {
	return &Service{users: users, jwt: jwt}
}

func (s *Service) RegisterStudent(ctx context.Context, req RegisterStudentRequest) (*domain.User, string, error) {
	user := &domain.User{
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Name:    req.Name,
		Phone:   req.Phone,
		City:    req.City,
		College: req.College,
		Role:    domain.RoleStudent,
	}
	return s.register(ctx, user, req.Password)
}

func (s *Service) RegisterOwner(ctx context.Context, req RegisterOwnerRequest) (*domain.User, string, error) {
	user := &domain.User{
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
		Name:  req.Name,
		Phone: req.Phone,
		City:  req.City,
		Role:  domain.RoleOwner,
	}
	return s.register(ctx, user, req.Password)
}

func (s *Service) register(ctx context.Context, user *domain.User, password string) (*domain.User, string, error) {
	if err := s.validateEmailUnique(ctx, user.Email); err != nil {
		return nil, "", err
	}

	hashedPassword, err := s.hashPassword(password)
	if err != nil {
		return nil, "", err
	}
	user.PasswordHash = hashedPassword

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", ErrEmailAlreadyExists
		}
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}

	user.PasswordHash = ""
	return user, token, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}

	user.PasswordHash = ""
	return user, token, nil
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.City != "" {
		user.City = req.City
	}
	if req.College != "" {
		user.College = req.College
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) validateEmailUnique(ctx context.Context, email string) error {
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return ErrEmailAlreadyExists
	}
	return nil
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func toPublic(u *domain.User) UserPublic {
	return UserPublic{
		ID:      u.ID,
		Role:    string(u.Role),
		Name:    u.Name,
		Email:   u.Email,
		Phone:   u.Phone,
		City:    u.City,
		College: u.College,
	}
}
