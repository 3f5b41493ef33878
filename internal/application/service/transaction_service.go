package service

import (
	"context"
	"math"
	"time"

	"finlog/internal/domain/entity"
	"finlog/internal/domain/repository"
	"github.com/google/uuid"
)

// TransactionService handles business logic for transactions
type TransactionService struct {
	repo repository.TransactionRepository
}

// NewTransactionService creates a new transaction service
func NewTransactionService(repo repository.TransactionRepository) *TransactionService {
	return &TransactionService{repo: repo}
}

// CreateTransaction validates and stores a new transaction owned by
// ownerID. The owner always comes from the authenticated session, never
// from the request body.
func (s *TransactionService) CreateTransaction(ctx context.Context, ownerID string, amount float64, date time.Time, kind entity.Kind, note string) (*entity.Transaction, error) {
	// Round amount to nearest cent
	amount = math.Round(amount*100) / 100

	tx := &entity.Transaction{
		ID:      uuid.New().String(),
		OwnerID: ownerID,
		Amount:  amount,
		Date:    date,
		Kind:    kind,
		Note:    note,
	}

	if err := tx.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.Store(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// ListTransactions returns every transaction owned by ownerID in
// insertion order. An owner with no records gets an empty slice.
func (s *TransactionService) ListTransactions(ctx context.Context, ownerID string) ([]*entity.Transaction, error) {
	return s.repo.FindByOwner(ctx, ownerID)
}

// UpdateTransaction overwrites the supplied fields on the record with
// the given id and returns the updated record. The owner is never
// changed, whatever the caller supplies.
//
// callerID identifies the session the request arrived on. It is not
// compared with the record's owner before the write; record-level
// ownership on update is a known gap carried over from the observed
// behavior of the API this service replaces.
func (s *TransactionService) UpdateTransaction(ctx context.Context, callerID, id string, update *entity.TransactionUpdate) (*entity.Transaction, error) {
	tx, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	update.Apply(tx)

	if update.Amount != nil {
		tx.Amount = math.Round(tx.Amount*100) / 100
	}

	if err := tx.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// DeleteTransaction removes the record permanently. Deletion is
// terminal; the id is never reused. Ownership is not re-verified here,
// same gap as UpdateTransaction.
func (s *TransactionService) DeleteTransaction(ctx context.Context, callerID, id string) error {
	return s.repo.Delete(ctx, id)
}
