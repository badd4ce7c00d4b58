package userRepo

import (
	"context"
	"errors"

	"salonify/models"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("a user with this email already exists")
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID. Returns ErrNotFound when absent.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by email. Returns nil, nil when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetAll retrieves all users, newest first.
	GetAll(ctx context.Context) ([]models.User, error)
	// Create inserts a new user record. Returns ErrDuplicateEmail on conflict.
	Create(ctx context.Context, user *models.User) error
	// Update replaces the stored profile, settings and credentials.
	Update(ctx context.Context, user *models.User) error
	// SetTokenHash stores the hash of the current session token. Empty clears it.
	SetTokenHash(ctx context.Context, id, tokenHash string) error
	// Delete removes a user record by its ID.
	Delete(ctx context.Context, id string) error
}
