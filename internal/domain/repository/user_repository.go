package repository

import (
	"context"

	"finlog/internal/domain/entity"
)

// UserRepository defines the interface for credential storage
type UserRepository interface {
	// Store saves a new user. Returns entity.ErrEmailTaken when a
	// record with the same email already exists.
	Store(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by email.
	// Returns entity.ErrNotFound when no record matches.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by id.
	// Returns entity.ErrNotFound when no record matches.
	FindByID(ctx context.Context, id string) (*entity.User, error)
}
