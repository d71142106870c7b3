package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/scannercafe/sync-api/internal/application/dto"
	"github.com/scannercafe/sync-api/internal/domain"
	"github.com/scannercafe/sync-api/internal/domain/entity"
	"github.com/scannercafe/sync-api/internal/domain/repository"
)

// WorkspaceUseCase registro y resolución de workspaces (tenants).
// Es el chequeo de capacidad del que dependen todos los demás módulos:
// toda operación de catálogo/ventas/reportes asume un workspace ya resuelto.
type WorkspaceUseCase struct {
	repo  repository.WorkspaceRepository
	cache repository.WorkspaceCache // opcional: nil desactiva el caché
}

// NewWorkspaceUseCase construye el caso de uso. cache puede ser nil.
func NewWorkspaceUseCase(repo repository.WorkspaceRepository, cache repository.WorkspaceCache) *WorkspaceUseCase {
	return &WorkspaceUseCase{repo: repo, cache: cache}
}

// Register crea el workspace si la sync key es nueva; si ya existe con el
// mismo nombre de negocio la llamada es idempotente (created=false). Una key
// existente bajo un negocio distinto es acceso denegado.
func (uc *WorkspaceUseCase) Register(ctx context.Context, in dto.RegisterWorkspaceRequest) (*dto.RegisterWorkspaceResponse, error) {
	if in.BusinessName == "" || in.SyncKey == "" {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.repo.GetBySyncKey(ctx, in.SyncKey)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return uc.validateExisting(existing, in.BusinessName)
	}

	ws := &entity.Workspace{
		ID:        uuid.New().String(),
		SyncKey:   in.SyncKey,
		Business:  in.BusinessName,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, ws); err != nil {
		// Registro concurrente con la misma key: releer y aplicar la misma
		// regla de identidad que en el camino sin carrera.
		if errors.Is(err, domain.ErrDuplicate) {
			existing, err := uc.repo.GetBySyncKey(ctx, in.SyncKey)
			if err != nil {
				return nil, err
			}
			if existing == nil {
				return nil, domain.ErrNotFound
			}
			return uc.validateExisting(existing, in.BusinessName)
		}
		return nil, err
	}
	return &dto.RegisterWorkspaceResponse{
		OK:        true,
		Created:   true,
		Workspace: dto.WorkspaceInfo{Business: ws.Business, SyncKey: ws.SyncKey},
	}, nil
}

func (uc *WorkspaceUseCase) validateExisting(ws *entity.Workspace, businessName string) (*dto.RegisterWorkspaceResponse, error) {
	if ws.Business != businessName {
		return nil, domain.ErrForbidden
	}
	return &dto.RegisterWorkspaceResponse{
		OK:        true,
		Created:   false,
		Workspace: dto.WorkspaceInfo{Business: ws.Business, SyncKey: ws.SyncKey},
	}, nil
}

// Resolve valida la sync key y devuelve el workspace dueño. El caché es
// best-effort: cualquier fallo de Redis degrada a la consulta en DB.
func (uc *WorkspaceUseCase) Resolve(ctx context.Context, syncKey string) (*entity.Workspace, error) {
	if syncKey == "" {
		return nil, domain.ErrMissingSyncKey
	}
	if uc.cache != nil {
		if ws, err := uc.cache.Get(ctx, syncKey); err == nil && ws != nil {
			return ws, nil
		}
	}
	ws, err := uc.repo.GetBySyncKey(ctx, syncKey)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, domain.ErrNotFound
	}
	if uc.cache != nil {
		_ = uc.cache.Set(ctx, ws)
	}
	return ws, nil
}
