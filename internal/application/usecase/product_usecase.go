package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/scannercafe/sync-api/internal/application/dto"
	"github.com/scannercafe/sync-api/internal/domain"
	"github.com/scannercafe/sync-api/internal/domain/entity"
	"github.com/scannercafe/sync-api/internal/domain/repository"
)

// ProductUseCase operaciones de catálogo por workspace.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. Si (id, workspace) ya existe la operación es un
// no-op exitoso (skipped): la caja puede reenviar su catálogo completo sin
// lógica de deduplicación. Un barcode ya usado por *otro* id sí es conflicto.
func (uc *ProductUseCase) Create(ctx context.Context, workspaceKey string, in dto.ProductPayload) (*dto.SyncStatusResponse, error) {
	if in.ID == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.repo.GetByID(ctx, workspaceKey, in.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &dto.SyncStatusResponse{OK: true, Skipped: true, Reason: "already_exists"}, nil
	}

	if in.Barcode != nil && *in.Barcode != "" {
		owner, err := uc.repo.FindBarcodeOwner(ctx, workspaceKey, *in.Barcode, in.ID)
		if err != nil {
			return nil, err
		}
		if owner != nil {
			return nil, &domain.BarcodeConflictError{Barcode: *in.Barcode, ConflictID: owner.ID}
		}
	}

	p := buildProduct(workspaceKey, in, time.Now().UTC())
	if err := uc.repo.Create(ctx, p); err != nil {
		// Envío duplicado concurrente: el constraint único lo convierte en skip.
		if errors.Is(err, domain.ErrDuplicate) {
			return &dto.SyncStatusResponse{OK: true, Skipped: true, Reason: "already_exists"}, nil
		}
		return nil, err
	}
	return &dto.SyncStatusResponse{OK: true, Skipped: false}, nil
}

// List devuelve el catálogo completo ordenado por nombre.
func (uc *ProductUseCase) List(ctx context.Context, workspaceKey string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListByWorkspace(ctx, workspaceKey)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// GetByID obtiene un producto por id.
func (uc *ProductUseCase) GetByID(ctx context.Context, workspaceKey, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, workspaceKey, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(p), nil
}

// GetByBarcode obtiene un producto por código de barras (lookup de la caja).
func (uc *ProductUseCase) GetByBarcode(ctx context.Context, workspaceKey, barcode string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByBarcode(ctx, workspaceKey, barcode)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(p), nil
}

// Update sobreescribe los campos editables del producto y estampa updatedAt.
func (uc *ProductUseCase) Update(ctx context.Context, workspaceKey, id string, in dto.ProductPayload) error {
	p := buildProduct(workspaceKey, in, time.Now().UTC())
	p.ID = id
	p.UpdatedAt = time.Now().UTC()
	ok, err := uc.repo.Update(ctx, p)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto. Borrar un id inexistente no es error.
func (uc *ProductUseCase) Delete(ctx context.Context, workspaceKey, id string) error {
	return uc.repo.Delete(ctx, workspaceKey, id)
}

// buildProduct materializa el payload con la coerción permisiva de numéricos
// y timestamps del cliente (o now si faltan).
func buildProduct(workspaceKey string, in dto.ProductPayload, now time.Time) *entity.Product {
	return &entity.Product{
		ID:           in.ID,
		WorkspaceKey: workspaceKey,
		Barcode:      emptyToNil(in.Barcode),
		Name:         in.Name,
		Category:     emptyToNil(in.Category),
		PriceUSD:     dto.CoerceDecimal(in.PriceUSD),
		Stock:        dto.CoerceInt(in.Stock),
		Image:        emptyToNil(in.Image),
		CreatedAt:    dto.ParseTimeOr(in.CreatedAt, now),
		UpdatedAt:    dto.ParseTimeOr(in.UpdatedAt, now),
	}
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Workspace: p.WorkspaceKey,
		Barcode:   p.Barcode,
		Name:      p.Name,
		Category:  p.Category,
		PriceUSD:  p.PriceUSD,
		Stock:     p.Stock,
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
