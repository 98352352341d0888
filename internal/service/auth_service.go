package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"miniter/internal/auth"
	"miniter/internal/model"
	"miniter/internal/repository"
)

const bcryptCost = 10

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when signing up with an email already in use.
	ErrEmailTaken = errors.New("email already registered")
)

// AuthService handles sign-up and login.
type AuthService interface {
	SignUp(ctx context.Context, name, email, profile, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (userID uint, accessToken string, err error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenService) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// SignUp creates a new user with a hashed password and returns the
// stored row, hash excluded from serialization.
func (s *authService) SignUp(ctx context.Context, name, email, profile, password string) (*model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		Profile:      profile,
		PasswordHash: string(hashed),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// A concurrent sign-up can slip past the pre-check; the unique
		// index on email is the authority.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.userRepo.FindByID(ctx, user.ID)
}

// Login verifies credentials and issues an access token.
func (s *authService) Login(ctx context.Context, email, password string) (uint, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return 0, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return 0, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return 0, "", fmt.Errorf("issue token: %w", err)
	}

	return user.ID, token, nil
}
