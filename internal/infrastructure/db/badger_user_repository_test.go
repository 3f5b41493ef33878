package db

import (
	"context"
	"testing"
	"time"

	"finlog/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(email string) *entity.User {
	return &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
		CreatedAt:    time.Now().UTC(),
	}
}

func TestBadgerUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewBadgerUserRepository(openTestDB(t))

	t.Run("Store and FindByEmail", func(t *testing.T) {
		user := newTestUser("user@example.com")
		require.NoError(t, repo.Store(ctx, user))

		found, err := repo.FindByEmail(ctx, "user@example.com")
		assert.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, user.PasswordHash, found.PasswordHash, "hash must survive the round trip")
	})

	t.Run("FindByEmail is case insensitive", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "USER@example.COM")
		assert.NoError(t, err)
		assert.Equal(t, "user@example.com", found.Email)
	})

	t.Run("FindByID", func(t *testing.T) {
		user := newTestUser("byid@example.com")
		require.NoError(t, repo.Store(ctx, user))

		found, err := repo.FindByID(ctx, user.ID)
		assert.NoError(t, err)
		assert.Equal(t, "byid@example.com", found.Email)
	})

	t.Run("Duplicate email rejected", func(t *testing.T) {
		dup := newTestUser("user@example.com")
		assert.ErrorIs(t, repo.Store(ctx, dup), entity.ErrEmailTaken)
	})

	t.Run("Unknown lookups", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, entity.ErrNotFound)

		_, err = repo.FindByID(ctx, "no-such-id")
		assert.ErrorIs(t, err, entity.ErrNotFound)
	})
}
