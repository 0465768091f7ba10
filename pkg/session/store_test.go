package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "inventory-system/pkg/errors"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	sid, err := store.Create(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, sid)

	userID, err := store.Get(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestMemoryStoreUnknownSession(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	_, err := store.Get(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(-time.Second)
	ctx := context.Background()

	sid, err := store.Create(ctx, 7)
	require.NoError(t, err)

	_, err = store.Get(ctx, sid)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	sid, err := store.Create(ctx, 7)
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, sid))

	_, err = store.Get(ctx, sid)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestMemoryStoreDistinctIDs(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	first, err := store.Create(ctx, 1)
	require.NoError(t, err)
	second, err := store.Create(ctx, 1)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
