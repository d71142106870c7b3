package repository

import (
	"context"

	"github.com/scannercafe/sync-api/internal/domain/entity"
)

// WorkspaceRepository define el puerto de persistencia para Workspace (DIP).
type WorkspaceRepository interface {
	// Create persiste un workspace nuevo. Devuelve domain.ErrDuplicate si la
	// sync key ya existe (dos registros concurrentes).
	Create(ctx context.Context, ws *entity.Workspace) error
	// GetBySyncKey devuelve (nil, nil) cuando no existe.
	GetBySyncKey(ctx context.Context, syncKey string) (*entity.Workspace, error)
}

// WorkspaceCache caché de resolución de sync keys delante del repositorio.
// Los workspaces son inmutables una vez creados, por lo que las entradas no
// requieren invalidación.
type WorkspaceCache interface {
	// Get devuelve (nil, nil) en cache miss.
	Get(ctx context.Context, syncKey string) (*entity.Workspace, error)
	Set(ctx context.Context, ws *entity.Workspace) error
}
