package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"accounts-be/internal/entities"
)

// ErrNotFound is returned when no user matches the requested id or email
var ErrNotFound = errors.New("user not found")

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	FindByID(ctx context.Context, id int64) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	List(ctx context.Context, offset, limit int) ([]*entities.User, error)
	Update(ctx context.Context, user *entities.User) (*entities.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database. Email uniqueness is enforced
// by the database index; a duplicate insert surfaces as the driver's
// constraint-violation error, unchanged.
func (r *userRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	query := `
		INSERT INTO users (email, full_name, hashed_password)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query, user.Email, user.FullName, user.HashedPassword).Scan(
		&user.ID,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// FindByID finds a user by its numeric id
func (r *userRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	query := `
		SELECT id, email, full_name, hashed_password, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

// FindByEmail finds a user by exact email match
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `
		SELECT id, email, full_name, hashed_password, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

// List returns users in primary-key order, paginated by offset and limit.
// No upper bound is enforced on limit.
func (r *userRepository) List(ctx context.Context, offset, limit int) ([]*entities.User, error) {
	query := `
		SELECT id, email, full_name, hashed_password, created_at, updated_at
		FROM users
		ORDER BY id
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*entities.User
	for rows.Next() {
		var user entities.User
		var updatedAt sql.NullTime
		if err := rows.Scan(&user.ID, &user.Email, &user.FullName, &user.HashedPassword, &user.CreatedAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		if updatedAt.Valid {
			user.UpdatedAt = &updatedAt.Time
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}

	return users, nil
}

// Update persists the user's email and full name and stamps updated_at
func (r *userRepository) Update(ctx context.Context, user *entities.User) (*entities.User, error) {
	query := `
		UPDATE users
		SET email = $1, full_name = $2, updated_at = now()
		WHERE id = $3
		RETURNING updated_at
	`

	var updatedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, user.Email, user.FullName, user.ID).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if updatedAt.Valid {
		user.UpdatedAt = &updatedAt.Time
	}

	return user, nil
}

// Delete removes a user by id and reports whether a record existed
func (r *userRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return affected > 0, nil
}

func (r *userRepository) scanUser(row *sql.Row) (*entities.User, error) {
	var user entities.User
	var updatedAt sql.NullTime

	err := row.Scan(&user.ID, &user.Email, &user.FullName, &user.HashedPassword, &user.CreatedAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if updatedAt.Valid {
		user.UpdatedAt = &updatedAt.Time
	}

	return &user, nil
}
