package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scannercafe/sync-api/internal/domain/entity"
	"github.com/scannercafe/sync-api/internal/infrastructure/cache"
)

func newTestCache(t *testing.T, ttl time.Duration) (*cache.WorkspaceCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return cache.NewWorkspaceCache(rdb, ttl), mr
}

func testWorkspace() *entity.Workspace {
	return &entity.Workspace{
		ID:        "00000000-0000-0000-0000-000000000001",
		SyncKey:   "key-1",
		Business:  "Café Central",
		CreatedAt: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestWorkspaceCache_SetYGet(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ws := testWorkspace()

	require.NoError(t, c.Set(context.Background(), ws))

	got, err := c.Get(context.Background(), "key-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, ws.ID, got.ID)
	assert.Equal(t, ws.Business, got.Business)
	assert.True(t, ws.CreatedAt.Equal(got.CreatedAt))
}

func TestWorkspaceCache_MissDevuelveNilNil(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	got, err := c.Get(context.Background(), "no-existe")
	require.NoError(t, err, "un miss no es error")
	assert.Nil(t, got)
}

func TestWorkspaceCache_EntradaExpira(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	require.NoError(t, c.Set(context.Background(), testWorkspace()))

	mr.FastForward(2 * time.Minute)

	got, err := c.Get(context.Background(), "key-1")
	require.NoError(t, err)
	assert.Nil(t, got, "pasado el TTL la entrada debe desaparecer")
}

func TestWorkspaceCache_EntradaCorruptaEsMiss(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	require.NoError(t, mr.Set("sync:workspace:key-1", "{json roto"))

	got, err := c.Get(context.Background(), "key-1")
	require.NoError(t, err, "una entrada corrupta degrada a miss, no a error")
	assert.Nil(t, got)
}
