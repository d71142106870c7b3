package repository

import (
	"context"

	"github.com/scannercafe/sync-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Todas las operaciones están particionadas por workspaceKey.
type ProductRepository interface {
	// Create persiste un producto nuevo. Devuelve domain.ErrDuplicate si la
	// pareja (id, workspace) ya existe.
	Create(ctx context.Context, p *entity.Product) error
	// GetByID devuelve (nil, nil) cuando no existe.
	GetByID(ctx context.Context, workspaceKey, id string) (*entity.Product, error)
	// GetByBarcode devuelve (nil, nil) cuando no existe.
	GetByBarcode(ctx context.Context, workspaceKey, barcode string) (*entity.Product, error)
	// FindBarcodeOwner busca un producto del workspace con el mismo barcode y
	// un id distinto a excludeID. Devuelve (nil, nil) si no hay conflicto.
	FindBarcodeOwner(ctx context.Context, workspaceKey, barcode, excludeID string) (*entity.Product, error)
	// ListByWorkspace lista el catálogo completo ordenado por nombre ascendente.
	ListByWorkspace(ctx context.Context, workspaceKey string) ([]*entity.Product, error)
	// Update sobreescribe los campos editables. Devuelve false si el producto no existe.
	Update(ctx context.Context, p *entity.Product) (bool, error)
	// Delete es idempotente: borrar un id inexistente no es error.
	Delete(ctx context.Context, workspaceKey, id string) error
}
