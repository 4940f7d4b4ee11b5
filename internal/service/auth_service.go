package service

import (
	"context"
	"errors"
	"fmt"

	"accounts-be/internal/entities"
	"accounts-be/internal/hasher"
	"accounts-be/internal/jwt"
	"accounts-be/internal/models"
	"accounts-be/internal/repository"
)

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password; the two cases are deliberately not distinguishable by the caller
var ErrInvalidCredentials = errors.New("incorrect email or password")

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (*entities.User, error)
	Login(ctx context.Context, email, password string) (*models.TokenResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	hasher     *hasher.Hasher
	jwtService *jwt.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, passwordHasher *hasher.Hasher, jwtService *jwt.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		hasher:     passwordHasher,
		jwtService: jwtService,
	}
}

// Authenticate looks up the user by exact email match and verifies the
// password against the stored digest
func (s *authService) Authenticate(ctx context.Context, email, password string) (*entities.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.hasher.Verify(password, user.HashedPassword) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Login authenticates the user and mints a bearer token carrying the user's
// email as the subject claim
func (s *authService) Login(ctx context.Context, email, password string) (*models.TokenResponse, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	token, err := s.jwtService.Issue(map[string]any{"sub": user.Email})
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}
