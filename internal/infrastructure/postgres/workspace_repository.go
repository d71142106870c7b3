package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/scannercafe/sync-api/internal/domain"
	"github.com/scannercafe/sync-api/internal/domain/entity"
	"github.com/scannercafe/sync-api/internal/domain/repository"
)

var _ repository.WorkspaceRepository = (*WorkspaceRepo)(nil)

// WorkspaceRepo implementación del puerto WorkspaceRepository sobre PostgreSQL.
type WorkspaceRepo struct {
	q Querier
}

// NewWorkspaceRepository construye el adaptador de persistencia para workspaces.
func NewWorkspaceRepository(q Querier) *WorkspaceRepo {
	return &WorkspaceRepo{q: q}
}

// Create persiste un workspace nuevo. La sync key tiene constraint único.
func (r *WorkspaceRepo) Create(ctx context.Context, ws *entity.Workspace) error {
	query := `
		INSERT INTO workspaces (id, sync_key, business, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, ws.ID, ws.SyncKey, ws.Business, ws.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert workspace: %w", err)
	}
	return nil
}

// GetBySyncKey obtiene un workspace por su sync key.
func (r *WorkspaceRepo) GetBySyncKey(ctx context.Context, syncKey string) (*entity.Workspace, error) {
	query := `
		SELECT id, sync_key, business, created_at
		FROM workspaces WHERE sync_key = $1`
	var ws entity.Workspace
	err := r.q.QueryRow(ctx, query, syncKey).Scan(&ws.ID, &ws.SyncKey, &ws.Business, &ws.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get workspace: %w", err)
	}
	return &ws, nil
}
