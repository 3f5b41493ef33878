package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"finlog/internal/domain/entity"
	"github.com/dgraph-io/badger/v3"
)

const txKeyPrefix = "tx:"

// BadgerTransactionRepository implements the transaction repository
// interface using BadgerDB. Each transaction is a JSON document under
// "tx:<id>". Listings are a prefix scan filtered by owner; there is no
// secondary index.
type BadgerTransactionRepository struct {
	db  *badger.DB
	seq *badger.Sequence
}

// NewBadgerTransactionRepository creates a new BadgerDB transaction repository
func NewBadgerTransactionRepository(db *badger.DB) (*BadgerTransactionRepository, error) {
	// Monotonic insertion counter; listings sort on it because badger
	// iterates in key order, not insertion order.
	seq, err := db.GetSequence([]byte("seq:tx"), 64)
	if err != nil {
		return nil, fmt.Errorf("failed to open transaction sequence: %w", err)
	}

	return &BadgerTransactionRepository{db: db, seq: seq}, nil
}

// Close releases the sequence lease.
func (r *BadgerTransactionRepository) Close() error {
	return r.seq.Release()
}

// Store saves a new transaction document and returns its ID
func (r *BadgerTransactionRepository) Store(ctx context.Context, tx *entity.Transaction) (string, error) {
	seq, err := r.seq.Next()
	if err != nil {
		return "", fmt.Errorf("failed to allocate sequence: %w", err)
	}
	tx.Seq = seq

	data, err := json.Marshal(tx)
	if err != nil {
		return "", fmt.Errorf("failed to marshal transaction: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(txKeyPrefix+tx.ID), data)
	})

	if err != nil {
		return "", fmt.Errorf("failed to store transaction: %w", err)
	}

	return tx.ID, nil
}

// FindByID retrieves a transaction by its unique identifier
func (r *BadgerTransactionRepository) FindByID(ctx context.Context, id string) (*entity.Transaction, error) {
	var tx entity.Transaction

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(txKeyPrefix + id))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &tx)
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, entity.ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to retrieve transaction: %w", err)
	}

	return &tx, nil
}

// FindByOwner retrieves every transaction owned by ownerID in insertion order
func (r *BadgerTransactionRepository) FindByOwner(ctx context.Context, ownerID string) ([]*entity.Transaction, error) {
	results := make([]*entity.Transaction, 0)

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(txKeyPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var tx entity.Transaction
				if err := json.Unmarshal(val, &tx); err != nil {
					return err
				}
				if tx.OwnerID == ownerID {
					results = append(results, &tx)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Seq < results[j].Seq
	})

	return results, nil
}

// Update replaces the stored document for tx.ID
func (r *BadgerTransactionRepository) Update(ctx context.Context, tx *entity.Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		key := []byte(txKeyPrefix + tx.ID)
		if _, err := txn.Get(key); err != nil {
			return err
		}
		return txn.Set(key, data)
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return entity.ErrNotFound
	}

	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	return nil
}

// Delete removes the document permanently
func (r *BadgerTransactionRepository) Delete(ctx context.Context, id string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		key := []byte(txKeyPrefix + id)
		if _, err := txn.Get(key); err != nil {
			return err
		}
		return txn.Delete(key)
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return entity.ErrNotFound
	}

	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	return nil
}
