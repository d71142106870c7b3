package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/scannercafe/sync-api/internal/domain/entity"
	"github.com/scannercafe/sync-api/internal/domain/repository"
)

var _ repository.WorkspaceCache = (*WorkspaceCache)(nil)

// WorkspaceCache caché Redis de resolución de sync keys. La resolución corre
// en cada request autenticado, y los workspaces son inmutables, así que las
// entradas no necesitan invalidación (solo TTL por higiene).
type WorkspaceCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewWorkspaceCache construye el caché sobre un cliente Redis ya conectado.
func NewWorkspaceCache(rdb *redis.Client, ttl time.Duration) *WorkspaceCache {
	return &WorkspaceCache{rdb: rdb, ttl: ttl}
}

func cacheKey(syncKey string) string {
	return "sync:workspace:" + syncKey
}

// Get devuelve el workspace cacheado o (nil, nil) en miss.
func (c *WorkspaceCache) Get(ctx context.Context, syncKey string) (*entity.Workspace, error) {
	b, err := c.rdb.Get(ctx, cacheKey(syncKey)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get workspace: %w", err)
	}
	var ws entity.Workspace
	if err := json.Unmarshal(b, &ws); err != nil {
		// Entrada corrupta: tratarla como miss para que se resuelva contra la DB.
		return nil, nil
	}
	return &ws, nil
}

// Set guarda el workspace con el TTL configurado.
func (c *WorkspaceCache) Set(ctx context.Context, ws *entity.Workspace) error {
	b, err := json.Marshal(ws)
	if err != nil {
		return fmt.Errorf("cache marshal workspace: %w", err)
	}
	if err := c.rdb.Set(ctx, cacheKey(ws.SyncKey), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set workspace: %w", err)
	}
	return nil
}
