package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/you/otpauthsvc/domain"
)

func newSessionRepoForTest(t *testing.T) domain.SessionRepository {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewSessionRepository(client, time.Hour)
}

func TestSessionRepositoryImpl_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := newSessionRepoForTest(t)

	session := &domain.Session{
		ID:         "sess-1",
		IdentityID: 7,
		ExpiresAt:  time.Now().Add(time.Hour),
		CreatedAt:  time.Now(),
	}
	require.NoError(t, repo.Create(ctx, session))

	found, err := repo.FindByID(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, uint(7), found.IdentityID)
}

func TestSessionRepositoryImpl_FindMissing(t *testing.T) {
	repo := newSessionRepoForTest(t)

	_, err := repo.FindByID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionRepositoryImpl_ExpiredSession(t *testing.T) {
	ctx := context.Background()
	repo := newSessionRepoForTest(t)

	session := &domain.Session{
		ID:         "sess-old",
		IdentityID: 7,
		ExpiresAt:  time.Now().Add(-time.Minute),
		CreatedAt:  time.Now().Add(-2 * time.Hour),
	}
	require.NoError(t, repo.Create(ctx, session))

	_, err := repo.FindByID(ctx, "sess-old")
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestSessionRepositoryImpl_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newSessionRepoForTest(t)

	session := &domain.Session{
		ID:         "sess-2",
		IdentityID: 7,
		ExpiresAt:  time.Now().Add(time.Hour),
		CreatedAt:  time.Now(),
	}
	require.NoError(t, repo.Create(ctx, session))
	require.NoError(t, repo.Delete(ctx, "sess-2"))

	_, err := repo.FindByID(ctx, "sess-2")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
