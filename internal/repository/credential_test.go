package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/passboard/internal/model"
)

func newCredential(website string) *model.Credential {
	return &model.Credential{
		Website:  website,
		Username: "user",
		Password: "password123",
		Category: model.CategoryOther,
	}
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	repo := NewCredentialRepository()
	ctx := context.Background()

	first := newCredential("a.com")
	second := newCredential("b.com")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestCreateNeverReusesDeletedIDs(t *testing.T) {
	repo := NewCredentialRepository()
	ctx := context.Background()

	for _, site := range []string{"a.com", "b.com", "c.com"} {
		require.NoError(t, repo.Create(ctx, newCredential(site)))
	}
	require.NoError(t, repo.Delete(ctx, 3))

	next := newCredential("d.com")
	require.NoError(t, repo.Create(ctx, next))
	assert.Equal(t, int64(4), next.ID)
}

func TestGetAndUpdate(t *testing.T) {
	repo := NewCredentialRepository()
	ctx := context.Background()

	c := newCredential("a.com")
	require.NoError(t, repo.Create(ctx, c))

	c.Username = "changed"
	require.NoError(t, repo.Update(ctx, *c))

	got, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "changed", got.Username)
}

func TestMissingIDs(t *testing.T) {
	repo := NewCredentialRepository()
	ctx := context.Background()

	_, err := repo.Get(ctx, 42)
	assert.ErrorIs(t, err, ErrCredentialNotFound)

	err = repo.Update(ctx, model.Credential{ID: 42})
	assert.ErrorIs(t, err, ErrCredentialNotFound)

	err = repo.Delete(ctx, 42)
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestListIsOrderedByID(t *testing.T) {
	repo := NewCredentialRepository()
	ctx := context.Background()
	require.NoError(t, repo.Seed(ctx, SeedCredentials()))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 5)
	for i, c := range list {
		assert.Equal(t, int64(i+1), c.ID)
	}
	assert.Equal(t, "example.com", list[0].Website)
	assert.Equal(t, "shopping.com", list[4].Website)

	require.NoError(t, repo.Delete(ctx, 2))
	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, int64(3), list[1].ID)
}

func TestCancelledContext(t *testing.T) {
	repo := NewCredentialRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, repo.Create(ctx, newCredential("a.com")), context.Canceled)
	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConcurrentCreateYieldsUniqueIDs(t *testing.T) {
	repo := NewCredentialRepository()
	ctx := context.Background()

	const workers = 50
	ids := make(chan int64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := newCredential("x.com")
			if err := repo.Create(ctx, c); err == nil {
				ids <- c.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "id %d issued twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
}
