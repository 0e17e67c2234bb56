package gateway

import (
	"context"
	"path/filepath"
	"testing"

	"prescripto-patient-client/internal/domain/gateway"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTokenStorage(t *testing.T) {
	ctx := context.Background()
	store := NewFileTokenStorage(filepath.Join(t.TempDir(), "session", "token"))

	_, err := store.Load(ctx)
	require.ErrorIs(t, err, gateway.ErrNoToken)

	require.NoError(t, store.Save(ctx, "tok-abc"))
	token, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)

	// overwriting replaces, not appends
	require.NoError(t, store.Save(ctx, "tok-new"))
	token, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-new", token)

	require.NoError(t, store.Clear(ctx))
	_, err = store.Load(ctx)
	require.ErrorIs(t, err, gateway.ErrNoToken)

	// clearing an already-absent token is not an error
	require.NoError(t, store.Clear(ctx))
}

func TestRedisTokenStorage(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	store := NewRedisTokenStorage(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	_, err := store.Load(ctx)
	require.ErrorIs(t, err, gateway.ErrNoToken)

	require.NoError(t, store.Save(ctx, "tok-abc"))
	token, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)

	require.NoError(t, store.Clear(ctx))
	_, err = store.Load(ctx)
	require.ErrorIs(t, err, gateway.ErrNoToken)

	require.NoError(t, store.Clear(ctx))
}
