package repositories

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetstack/sweet-shop-api/internal/database"
)

// setupTestDB opens a fresh in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	ctx := context.Background()
	db, err := database.Open(ctx, ":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(ctx, db))

	t.Cleanup(func() { db.Close() })
	return db
}

func TestUserWriteRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	id, err := repo.Save(ctx, "alice", "alice@example.com", "hashed-password", "user")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), id)

	t.Run("duplicate username is rejected", func(t *testing.T) {
		_, err := repo.Save(ctx, "alice", "other@example.com", "hash", "user")
		assert.Error(t, err)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, err := repo.Save(ctx, "alice2", "alice@example.com", "hash", "user")
		assert.Error(t, err)
	})

	t.Run("invalid role is rejected", func(t *testing.T) {
		_, err := repo.Save(ctx, "mallory", "mallory@example.com", "hash", "superadmin")
		assert.Error(t, err)
	})
}

func TestUserReadRepository_GetByUsernameOrEmail(t *testing.T) {
	db := setupTestDB(t)
	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	_, err := writeRepo.Save(ctx, "charlie", "charlie@example.com", "hash1", "user")
	require.NoError(t, err)
	_, err = writeRepo.Save(ctx, "dave", "dave@example.com", "hash2", "admin")
	require.NoError(t, err)

	t.Run("by username", func(t *testing.T) {
		user, err := readRepo.GetByUsernameOrEmail(ctx, "charlie", "charlie")
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "charlie", user.Username)
		assert.Equal(t, "user", user.Role)
	})

	t.Run("by email", func(t *testing.T) {
		user, err := readRepo.GetByUsernameOrEmail(ctx, "dave@example.com", "dave@example.com")
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "dave", user.Username)
		assert.Equal(t, "admin", user.Role)
	})

	t.Run("no match returns nil without error", func(t *testing.T) {
		user, err := readRepo.GetByUsernameOrEmail(ctx, "nobody", "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	id, err := writeRepo.Save(ctx, "erin", "erin@example.com", "hash", "user")
	require.NoError(t, err)

	user, err := readRepo.GetByID(ctx, id)
	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "erin", user.Username)
	assert.Equal(t, "erin@example.com", user.Email)
	assert.False(t, user.CreatedAt.IsZero())

	missing, err := readRepo.GetByID(ctx, 9999)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}
