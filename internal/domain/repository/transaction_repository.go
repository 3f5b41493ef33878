package repository

import (
	"context"

	"finlog/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction storage
type TransactionRepository interface {
	// Store saves a new transaction document and returns its ID
	Store(ctx context.Context, tx *entity.Transaction) (string, error)

	// FindByID retrieves a transaction by its unique identifier.
	// Returns entity.ErrNotFound when the id does not exist.
	FindByID(ctx context.Context, id string) (*entity.Transaction, error)

	// FindByOwner retrieves every transaction owned by ownerID in
	// insertion order. An owner with no records yields an empty slice.
	FindByOwner(ctx context.Context, ownerID string) ([]*entity.Transaction, error)

	// Update replaces the stored document for tx.ID.
	// Returns entity.ErrNotFound when the id does not exist.
	Update(ctx context.Context, tx *entity.Transaction) error

	// Delete removes the document permanently.
	// Returns entity.ErrNotFound when the id does not exist.
	Delete(ctx context.Context, id string) error
}
