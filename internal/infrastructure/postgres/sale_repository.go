package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/scannercafe/sync-api/internal/domain"
	"github.com/scannercafe/sync-api/internal/domain/entity"
	"github.com/scannercafe/sync-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
// Las líneas de venta se guardan como JSONB: la venta es un snapshot
// inmutable y nunca se consulta por línea individual.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `workspace_key, id, items, total_usd, total_vef, exchange_rate, created_at`

// Create persiste una venta nueva. (id, workspace) tiene constraint único.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	items, err := marshalItems(s.Items)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.q.Exec(ctx, query,
		s.WorkspaceKey, s.ID, items, s.TotalUSD, s.TotalVEF, s.ExchangeRate, s.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// InsertIfAbsent inserta la venta solo si (id, workspace) no existe, en una
// sola sentencia (ON CONFLICT DO NOTHING). RowsAffected distingue el resultado.
func (r *SaleRepo) InsertIfAbsent(ctx context.Context, s *entity.Sale) (repository.InsertOutcome, error) {
	items, err := marshalItems(s.Items)
	if err != nil {
		return repository.OutcomeSkipped, err
	}
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (workspace_key, id) DO NOTHING`
	cmd, err := r.q.Exec(ctx, query,
		s.WorkspaceKey, s.ID, items, s.TotalUSD, s.TotalVEF, s.ExchangeRate, s.CreatedAt,
	)
	if err != nil {
		return repository.OutcomeSkipped, fmt.Errorf("insert sale if absent: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return repository.OutcomeSkipped, nil
	}
	return repository.OutcomeInserted, nil
}

// GetByID obtiene una venta por id dentro del workspace.
func (r *SaleRepo) GetByID(ctx context.Context, workspaceKey, id string) (*entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales WHERE workspace_key = $1 AND id = $2`
	return scanSale(r.q.QueryRow(ctx, query, workspaceKey, id), "get sale")
}

// ListByWorkspace lista todas las ventas del workspace, más recientes primero.
func (r *SaleRepo) ListByWorkspace(ctx context.Context, workspaceKey string) ([]*entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales WHERE workspace_key = $1
		ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, workspaceKey)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return collectSales(rows)
}

// ListByDateRange lista las ventas con createdAt dentro de [from, to], más recientes primero.
func (r *SaleRepo) ListByDateRange(ctx context.Context, workspaceKey string, from, to time.Time) ([]*entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales WHERE workspace_key = $1 AND created_at >= $2 AND created_at <= $3
		ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, workspaceKey, from, to)
	if err != nil {
		return nil, fmt.Errorf("list sales by date: %w", err)
	}
	return collectSales(rows)
}

// Delete elimina una venta por id. Idempotente.
func (r *SaleRepo) Delete(ctx context.Context, workspaceKey, id string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM sales WHERE workspace_key = $1 AND id = $2`,
		workspaceKey, id,
	)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

// DeleteAll purga todas las ventas del workspace (reset del tenant).
func (r *SaleRepo) DeleteAll(ctx context.Context, workspaceKey string) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM sales WHERE workspace_key = $1`, workspaceKey)
	if err != nil {
		return 0, fmt.Errorf("delete all sales: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func marshalItems(items []entity.SaleItem) ([]byte, error) {
	if items == nil {
		items = []entity.SaleItem{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("marshal sale items: %w", err)
	}
	return b, nil
}

func scanSale(row pgx.Row, op string) (*entity.Sale, error) {
	var s entity.Sale
	var items []byte
	err := row.Scan(&s.WorkspaceKey, &s.ID, &items, &s.TotalUSD, &s.TotalVEF, &s.ExchangeRate, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal(items, &s.Items); err != nil {
		return nil, fmt.Errorf("unmarshal sale items: %w", err)
	}
	return &s, nil
}

func collectSales(rows pgx.Rows) ([]*entity.Sale, error) {
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		var items []byte
		if err := rows.Scan(&s.WorkspaceKey, &s.ID, &items, &s.TotalUSD, &s.TotalVEF, &s.ExchangeRate, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		if err := json.Unmarshal(items, &s.Items); err != nil {
			return nil, fmt.Errorf("unmarshal sale items: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
