package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"finlog/internal/domain/entity"
	"github.com/dgraph-io/badger/v3"
)

const (
	userKeyPrefix   = "user:"
	userIDKeyPrefix = "userid:"
)

// BadgerUserRepository implements the credential store on BadgerDB.
// The document lives under "user:<email>"; "userid:<id>" holds a
// pointer back to the email so lookups by id stay a single get.
type BadgerUserRepository struct {
	db *badger.DB
}

// NewBadgerUserRepository creates a new BadgerDB user repository
func NewBadgerUserRepository(db *badger.DB) *BadgerUserRepository {
	return &BadgerUserRepository{db: db}
}

// Store saves a new user, enforcing email uniqueness inside a single
// badger transaction.
func (r *BadgerUserRepository) Store(ctx context.Context, user *entity.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	email := strings.ToLower(user.Email)

	err = r.db.Update(func(txn *badger.Txn) error {
		key := []byte(userKeyPrefix + email)

		_, err := txn.Get(key)
		if err == nil {
			return entity.ErrEmailTaken
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		if err := txn.Set(key, data); err != nil {
			return err
		}
		return txn.Set([]byte(userIDKeyPrefix+user.ID), []byte(email))
	})

	if errors.Is(err, entity.ErrEmailTaken) {
		return entity.ErrEmailTaken
	}

	if err != nil {
		return fmt.Errorf("failed to store user: %w", err)
	}

	return nil
}

// FindByEmail retrieves a user by email
func (r *BadgerUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(userKeyPrefix + strings.ToLower(email)))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &user)
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, entity.ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	return &user, nil
}

// FindByID retrieves a user by id via the id pointer key
func (r *BadgerUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(userIDKeyPrefix + id))
		if err != nil {
			return err
		}

		var email []byte
		if err := item.Value(func(val []byte) error {
			email = append([]byte(nil), val...)
			return nil
		}); err != nil {
			return err
		}

		item, err = txn.Get([]byte(userKeyPrefix + string(email)))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &user)
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, entity.ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	return &user, nil
}
