package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	id, err := store.Create(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	userID, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)

	require.NoError(t, store.Delete(ctx, id))

	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_DeleteIsIdempotent(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	id, err := store.Create(ctx, 1)
	require.NoError(t, err)

	assert.NoError(t, store.Delete(ctx, id))
	assert.NoError(t, store.Delete(ctx, id))
	assert.NoError(t, store.Delete(ctx, "never-existed"))
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)
	ctx := context.Background()

	id, err := store.Create(ctx, 7)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_DistinctIDs(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	a, err := store.Create(ctx, 1)
	require.NoError(t, err)
	b, err := store.Create(ctx, 1)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
