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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `workspace_key, id, barcode, name, category, price_usd, stock, image, created_at, updated_at`

// Create persiste un producto nuevo. (id, workspace) tiene constraint único.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		p.WorkspaceKey, p.ID, p.Barcode, p.Name, p.Category,
		p.PriceUSD, p.Stock, p.Image, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por id dentro del workspace.
func (r *ProductRepo) GetByID(ctx context.Context, workspaceKey, id string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE workspace_key = $1 AND id = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, workspaceKey, id), "get product")
}

// GetByBarcode obtiene un producto por código de barras dentro del workspace.
func (r *ProductRepo) GetByBarcode(ctx context.Context, workspaceKey, barcode string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE workspace_key = $1 AND barcode = $2
		LIMIT 1`
	return r.scanOne(r.q.QueryRow(ctx, query, workspaceKey, barcode), "get product by barcode")
}

// FindBarcodeOwner busca el producto del workspace que ya usa el barcode con un id distinto.
func (r *ProductRepo) FindBarcodeOwner(ctx context.Context, workspaceKey, barcode, excludeID string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE workspace_key = $1 AND barcode = $2 AND id <> $3
		LIMIT 1`
	return r.scanOne(r.q.QueryRow(ctx, query, workspaceKey, barcode, excludeID), "find barcode owner")
}

// ListByWorkspace lista el catálogo completo ordenado por nombre ascendente.
func (r *ProductRepo) ListByWorkspace(ctx context.Context, workspaceKey string) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE workspace_key = $1 ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query, workspaceKey)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.WorkspaceKey, &p.ID, &p.Barcode, &p.Name, &p.Category,
			&p.PriceUSD, &p.Stock, &p.Image, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update sobreescribe los campos editables y devuelve false si el producto no existe.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) (bool, error) {
	query := `
		UPDATE products
		SET barcode = $3, name = $4, category = $5, price_usd = $6, stock = $7, image = $8, updated_at = $9
		WHERE workspace_key = $1 AND id = $2`
	cmd, err := r.q.Exec(ctx, query,
		p.WorkspaceKey, p.ID, p.Barcode, p.Name, p.Category,
		p.PriceUSD, p.Stock, p.Image, p.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("update product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina un producto por id. Idempotente.
func (r *ProductRepo) Delete(ctx context.Context, workspaceKey, id string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM products WHERE workspace_key = $1 AND id = $2`,
		workspaceKey, id,
	)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.WorkspaceKey, &p.ID, &p.Barcode, &p.Name, &p.Category,
		&p.PriceUSD, &p.Stock, &p.Image, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
