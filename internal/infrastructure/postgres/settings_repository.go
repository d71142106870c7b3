package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/scannercafe/sync-api/internal/domain/entity"
	"github.com/scannercafe/sync-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación del puerto SettingsRepository sobre PostgreSQL.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador de persistencia para settings.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get obtiene los settings del workspace; (nil, nil) si aún no existen.
func (r *SettingsRepo) Get(ctx context.Context, workspaceKey string) (*entity.Settings, error) {
	query := `
		SELECT workspace_key, business_name, tax_percent, exchange_rate, updated_at
		FROM settings WHERE workspace_key = $1`
	var s entity.Settings
	err := r.q.QueryRow(ctx, query, workspaceKey).Scan(
		&s.WorkspaceKey, &s.BusinessName, &s.TaxPercent, &s.ExchangeRate, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Upsert crea o reemplaza la fila de settings del workspace.
func (r *SettingsRepo) Upsert(ctx context.Context, s *entity.Settings) error {
	query := `
		INSERT INTO settings (workspace_key, business_name, tax_percent, exchange_rate, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (workspace_key) DO UPDATE
		SET business_name = EXCLUDED.business_name,
		    tax_percent   = EXCLUDED.tax_percent,
		    exchange_rate = EXCLUDED.exchange_rate,
		    updated_at    = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query, s.WorkspaceKey, s.BusinessName, s.TaxPercent, s.ExchangeRate, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
