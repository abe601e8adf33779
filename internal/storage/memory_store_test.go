package storage_test

import (
	"context"
	"testing"

	"cart_service/internal/storage"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore_ReadAbsentKey(t *testing.T) {
	store := storage.NewMemoryStore()

	value, found, err := store.Read(context.Background(), storage.DefaultCartKey)
	require.NoError(t, err)
	require.False(t, found)
	require.Empty(t, value)
}

func TestMemoryStore_WriteThenRead(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, storage.DefaultCartKey, `[{"id":1,"amount":2}]`))

	value, found, err := store.Read(ctx, storage.DefaultCartKey)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, `[{"id":1,"amount":2}]`, value)
}

func TestMemoryStore_OverwriteReplacesValue(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, storage.DefaultCartKey, "first"))
	require.NoError(t, store.Write(ctx, storage.DefaultCartKey, "second"))

	value, found, err := store.Read(ctx, storage.DefaultCartKey)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "second", value)
}
