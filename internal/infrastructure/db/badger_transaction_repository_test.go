package db

import (
	"context"
	"testing"
	"time"

	"finlog/internal/domain/entity"
	"github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()

	opts := badger.DefaultOptions(t.TempDir())
	opts.Logger = nil
	opts.SyncWrites = false

	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func newTestTransaction(ownerID string, amount float64) *entity.Transaction {
	return &entity.Transaction{
		ID:      uuid.New().String(),
		OwnerID: ownerID,
		Amount:  amount,
		Date:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Kind:    entity.KindIncome,
	}
}

func TestBadgerTransactionRepository(t *testing.T) {
	ctx := context.Background()

	repo, err := NewBadgerTransactionRepository(openTestDB(t))
	require.NoError(t, err)
	defer repo.Close()

	t.Run("Store and FindByID", func(t *testing.T) {
		tx := newTestTransaction("user-1", 100)
		tx.Note = "salary"

		id, err := repo.Store(ctx, tx)
		assert.NoError(t, err)
		assert.Equal(t, tx.ID, id)

		found, err := repo.FindByID(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, tx.OwnerID, found.OwnerID)
		assert.Equal(t, tx.Amount, found.Amount)
		assert.Equal(t, tx.Kind, found.Kind)
		assert.Equal(t, tx.Note, found.Note)
		assert.True(t, tx.Date.Equal(found.Date))
	})

	t.Run("FindByID unknown id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, "does-not-exist")
		assert.Nil(t, found)
		assert.ErrorIs(t, err, entity.ErrNotFound)
	})

	t.Run("Update replaces the document", func(t *testing.T) {
		tx := newTestTransaction("user-1", 100)
		_, err := repo.Store(ctx, tx)
		require.NoError(t, err)

		tx.Amount = 150
		tx.Note = "updated"
		assert.NoError(t, repo.Update(ctx, tx))

		found, err := repo.FindByID(ctx, tx.ID)
		assert.NoError(t, err)
		assert.Equal(t, 150.0, found.Amount)
		assert.Equal(t, "updated", found.Note)
	})

	t.Run("Update unknown id", func(t *testing.T) {
		tx := newTestTransaction("user-1", 100)
		assert.ErrorIs(t, repo.Update(ctx, tx), entity.ErrNotFound)
	})

	t.Run("Delete is terminal", func(t *testing.T) {
		tx := newTestTransaction("user-1", 100)
		_, err := repo.Store(ctx, tx)
		require.NoError(t, err)

		assert.NoError(t, repo.Delete(ctx, tx.ID))

		_, err = repo.FindByID(ctx, tx.ID)
		assert.ErrorIs(t, err, entity.ErrNotFound)

		assert.ErrorIs(t, repo.Delete(ctx, tx.ID), entity.ErrNotFound)
		assert.ErrorIs(t, repo.Update(ctx, tx), entity.ErrNotFound)
	})
}

func TestBadgerTransactionRepositoryFindByOwner(t *testing.T) {
	ctx := context.Background()

	repo, err := NewBadgerTransactionRepository(openTestDB(t))
	require.NoError(t, err)
	defer repo.Close()

	// Interleave two owners to exercise the owner filter
	amounts := []float64{10, 20, 30}
	for _, amount := range amounts {
		_, err := repo.Store(ctx, newTestTransaction("owner-a", amount))
		require.NoError(t, err)
		_, err = repo.Store(ctx, newTestTransaction("owner-b", amount*100))
		require.NoError(t, err)
	}

	t.Run("Returns only the owner's records in insertion order", func(t *testing.T) {
		txs, err := repo.FindByOwner(ctx, "owner-a")
		assert.NoError(t, err)
		assert.Len(t, txs, 3)

		for i, tx := range txs {
			assert.Equal(t, "owner-a", tx.OwnerID)
			assert.Equal(t, amounts[i], tx.Amount)
		}
	})

	t.Run("Owner with no records gets empty slice", func(t *testing.T) {
		txs, err := repo.FindByOwner(ctx, "owner-c")
		assert.NoError(t, err)
		assert.NotNil(t, txs)
		assert.Empty(t, txs)
	})
}
