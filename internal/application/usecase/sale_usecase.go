package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/scannercafe/sync-api/internal/application/dto"
	"github.com/scannercafe/sync-api/internal/domain"
	"github.com/scannercafe/sync-api/internal/domain/entity"
	"github.com/scannercafe/sync-api/internal/domain/repository"
)

// SaleUseCase operaciones sobre el log de ventas. Las ventas son inmutables:
// solo existen create, bulk-create y delete.
type SaleUseCase struct {
	repo repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo}
}

// Create crea una venta. Requiere id y totalUSD; una venta ya existente es un
// no-op exitoso (mismo contrato replay-safe que el catálogo).
func (uc *SaleUseCase) Create(ctx context.Context, workspaceKey string, in dto.SalePayload) (*dto.SyncStatusResponse, error) {
	if in.ID == "" || in.TotalUSD == nil {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.repo.GetByID(ctx, workspaceKey, in.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &dto.SyncStatusResponse{OK: true, Skipped: true, Reason: "already_exists"}, nil
	}

	s := buildSale(workspaceKey, in, time.Now().UTC())
	if err := uc.repo.Create(ctx, s); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return &dto.SyncStatusResponse{OK: true, Skipped: true, Reason: "already_exists"}, nil
		}
		return nil, err
	}
	return &dto.SyncStatusResponse{OK: true, Skipped: false}, nil
}

// List devuelve las ventas del workspace, más recientes primero. dateFilter
// opcional ("YYYY-MM-DD") restringe a un día calendario UTC completo.
func (uc *SaleUseCase) List(ctx context.Context, workspaceKey, dateFilter string) ([]dto.SaleResponse, error) {
	var (
		sales []*entity.Sale
		err   error
	)
	if dateFilter != "" {
		from, to, derr := DayWindow(dateFilter)
		if derr != nil {
			return nil, domain.ErrInvalidInput
		}
		sales, err = uc.repo.ListByDateRange(ctx, workspaceKey, from, to)
	} else {
		sales, err = uc.repo.ListByWorkspace(ctx, workspaceKey)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, *toSaleResponse(s))
	}
	return items, nil
}

// GetByID obtiene una venta por id.
func (uc *SaleUseCase) GetByID(ctx context.Context, workspaceKey, id string) (*dto.SaleResponse, error) {
	s, err := uc.repo.GetByID(ctx, workspaceKey, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(s), nil
}

// Delete elimina una venta por id. Idempotente.
func (uc *SaleUseCase) Delete(ctx context.Context, workspaceKey, id string) error {
	return uc.repo.Delete(ctx, workspaceKey, id)
}

// DeleteAll purga todas las ventas del workspace (reset del tenant) y
// devuelve cuántas eliminó. Irreversible.
func (uc *SaleUseCase) DeleteAll(ctx context.Context, workspaceKey string) (int64, error) {
	return uc.repo.DeleteAll(ctx, workspaceKey)
}

// DayWindow devuelve el rango inclusivo de un día calendario UTC:
// [00:00:00.000, 23:59:59.999].
func DayWindow(date string) (time.Time, time.Time, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("fecha inválida %q: %w", date, err)
	}
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	to := from.Add(24*time.Hour - time.Millisecond)
	return from, to, nil
}

// buildSale materializa el payload coaccionando numéricos de líneas y totales.
// ExchangeRate ausente/inválido queda nil, nunca 0.
func buildSale(workspaceKey string, in dto.SalePayload, now time.Time) *entity.Sale {
	items := make([]entity.SaleItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, entity.SaleItem{
			ProductID:   it.ProductID,
			Name:        it.Name,
			Qty:         dto.CoerceInt(it.Qty),
			PriceUSD:    dto.CoerceDecimal(it.PriceUSD),
			SubtotalUSD: dto.CoerceDecimal(it.SubtotalUSD),
		})
	}
	return &entity.Sale{
		ID:           in.ID,
		WorkspaceKey: workspaceKey,
		Items:        items,
		TotalUSD:     dto.CoerceDecimal(in.TotalUSD),
		TotalVEF:     dto.CoerceDecimal(in.TotalVEF),
		ExchangeRate: dto.CoerceOptionalDecimal(in.ExchangeRate),
		CreatedAt:    dto.ParseTimeOr(in.CreatedAt, now),
	}
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	items := make([]dto.SaleItemDTO, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemDTO{
			ProductID:   it.ProductID,
			Name:        it.Name,
			Qty:         it.Qty,
			PriceUSD:    it.PriceUSD,
			SubtotalUSD: it.SubtotalUSD,
		})
	}
	return &dto.SaleResponse{
		ID:           s.ID,
		Workspace:    s.WorkspaceKey,
		Items:        items,
		TotalUSD:     s.TotalUSD,
		TotalVEF:     s.TotalVEF,
		ExchangeRate: s.ExchangeRate,
		CreatedAt:    s.CreatedAt,
	}
}
