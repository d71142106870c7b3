package repository

import (
	"context"

	"github.com/scannercafe/sync-api/internal/domain/entity"
)

// SettingsRepository define el puerto de persistencia para Settings (DIP).
// Hay a lo sumo una fila por workspace; se crea en la primera escritura.
type SettingsRepository interface {
	// Get devuelve (nil, nil) cuando el workspace aún no guardó settings.
	Get(ctx context.Context, workspaceKey string) (*entity.Settings, error)
	// Upsert crea o reemplaza la fila del workspace.
	Upsert(ctx context.Context, s *entity.Settings) error
}
