package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/you/otpauthsvc/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open in-memory sqlite")

	require.NoError(t, db.AutoMigrate(&DBIdentity{}, &DBOTP{}))

	return db
}

func TestIdentityRepositoryImpl_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and assigns id", func(t *testing.T) {
		repo := NewIdentityRepository(openTestDB(t))

		identity := &domain.Identity{Email: "ada@example.com", FirstName: "Ada"}
		require.NoError(t, repo.Create(ctx, identity))
		assert.NotZero(t, identity.ID)

		found, err := repo.FindByEmail(ctx, "ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, identity.ID, found.ID)
		assert.Equal(t, "Ada", found.FirstName)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		repo := NewIdentityRepository(openTestDB(t))

		require.NoError(t, repo.Create(ctx, &domain.Identity{Email: "taken@example.com"}))

		err := repo.Create(ctx, &domain.Identity{Email: "taken@example.com"})
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
	})

	t.Run("duplicate mobile is rejected", func(t *testing.T) {
		repo := NewIdentityRepository(openTestDB(t))

		require.NoError(t, repo.Create(ctx, &domain.Identity{Mobile: "9998887777"}))

		err := repo.Create(ctx, &domain.Identity{Mobile: "9998887777"})
		assert.ErrorIs(t, err, domain.ErrMobileTaken)
	})

	t.Run("multiple single-channel identities coexist", func(t *testing.T) {
		// Null contacts must not collide on the unique indexes.
		repo := NewIdentityRepository(openTestDB(t))

		require.NoError(t, repo.Create(ctx, &domain.Identity{Email: "one@example.com"}))
		require.NoError(t, repo.Create(ctx, &domain.Identity{Email: "two@example.com"}))
		require.NoError(t, repo.Create(ctx, &domain.Identity{Mobile: "1112223333"}))
		require.NoError(t, repo.Create(ctx, &domain.Identity{Mobile: "4445556666"}))
	})
}

func TestIdentityRepositoryImpl_Find(t *testing.T) {
	ctx := context.Background()
	repo := NewIdentityRepository(openTestDB(t))

	identity := &domain.Identity{Email: "ada@example.com", Mobile: "9998887777", FirstName: "Ada", LastName: "Lovelace"}
	require.NoError(t, repo.Create(ctx, identity))

	t.Run("by email", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, "9998887777", found.Mobile)
	})

	t.Run("by mobile", func(t *testing.T) {
		found, err := repo.FindByMobile(ctx, "9998887777")
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", found.Email)
	})

	t.Run("by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, identity.ID)
		require.NoError(t, err)
		assert.Equal(t, "Lovelace", found.LastName)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, domain.ErrIdentityNotFound)
	})

	t.Run("unknown mobile", func(t *testing.T) {
		_, err := repo.FindByMobile(ctx, "0000000000")
		assert.ErrorIs(t, err, domain.ErrIdentityNotFound)
	})
}
