package service

import (
	"context"
	"fmt"

	"accounts-be/internal/entities"
	"accounts-be/internal/hasher"
	"accounts-be/internal/models"
	"accounts-be/internal/repository"
)

// UserService defines the interface for user account business logic
type UserService interface {
	Create(ctx context.Context, req *models.CreateUserRequest) (*entities.User, error)
	Get(ctx context.Context, id int64) (*entities.User, error)
	List(ctx context.Context, offset, limit int) ([]*entities.User, error)
	Update(ctx context.Context, id int64, req *models.UpdateUserRequest) (*entities.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type userService struct {
	userRepo repository.UserRepository
	hasher   *hasher.Hasher
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, passwordHasher *hasher.Hasher) UserService {
	return &userService{
		userRepo: userRepo,
		hasher:   passwordHasher,
	}
}

// Create hashes the password and inserts a new user. There is no
// duplicate-email pre-check; the database's unique index on email is the
// enforcement point and a duplicate insert propagates as the store's error.
func (s *userService) Create(ctx context.Context, req *models.CreateUserRequest) (*entities.User, error) {
	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entities.User{
		Email:          req.Email,
		FullName:       req.FullName,
		HashedPassword: hashedPassword,
	}

	return s.userRepo.Create(ctx, user)
}

// Get returns the user with the given id, or repository.ErrNotFound
func (s *userService) Get(ctx context.Context, id int64) (*entities.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// List returns users in insertion order, paginated by offset and limit
func (s *userService) List(ctx context.Context, offset, limit int) ([]*entities.User, error) {
	return s.userRepo.List(ctx, offset, limit)
}

// Update applies a partial update. Only fields present in the request are
// touched: a nil field is left as-is, a non-nil field is applied even when
// it holds the zero value.
func (s *userService) Update(ctx context.Context, id int64, req *models.UpdateUserRequest) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}

	return s.userRepo.Update(ctx, user)
}

// Delete removes the user with the given id and reports whether it existed
func (s *userService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.userRepo.Delete(ctx, id)
}
