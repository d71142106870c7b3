package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/scannercafe/sync-api/internal/application/dto"
	"github.com/scannercafe/sync-api/internal/domain"
	"github.com/scannercafe/sync-api/internal/domain/repository"
)

// SyncUseCase motor de ingesta bulk idempotente. Clasifica cada registro del
// lote como inserted, skipped o error sin abortar jamás el lote completo:
// skipped significa que el registro ya estaba sincronizado y es un resultado
// normal, no una falla. Esto permite a la caja reintentar o reenviar el lote
// entero sin efectos secundarios.
type SyncUseCase struct {
	products repository.ProductRepository
	sales    repository.SaleRepository
	notifier SyncNotifier // opcional: nil desactiva la notificación
}

// NewSyncUseCase construye el motor. notifier puede ser nil.
func NewSyncUseCase(products repository.ProductRepository, sales repository.SaleRepository, notifier SyncNotifier) *SyncUseCase {
	return &SyncUseCase{products: products, sales: sales, notifier: notifier}
}

// BulkProducts ingesta un lote de productos. El camino de producto tolera la
// carrera check/insert degradando la violación de unicidad a skipped: dos
// cajas subiendo el mismo catálogo a la vez no producen errores.
func (uc *SyncUseCase) BulkProducts(ctx context.Context, workspaceKey string, items []dto.ProductPayload) (*dto.BulkSyncResponse, error) {
	res := &dto.BulkSyncResponse{OK: true, Errors: []dto.BulkRecordError{}}
	now := time.Now().UTC()

	for _, in := range items {
		if in.ID == "" || in.Name == "" {
			res.Errors = append(res.Errors, dto.BulkRecordError{ID: in.ID, Error: "missing id or name"})
			continue
		}
		err := uc.products.Create(ctx, buildProduct(workspaceKey, in, now))
		switch {
		case err == nil:
			res.Inserted++
		case errors.Is(err, domain.ErrDuplicate):
			res.Skipped++
		default:
			res.Errors = append(res.Errors, dto.BulkRecordError{ID: in.ID, Error: err.Error()})
		}
	}

	uc.notify(workspaceKey, "products", res)
	return res, nil
}

// BulkSales ingesta un lote de ventas. Este camino debe ser seguro frente a
// lotes solapados de varias cajas concurrentes, así que usa la primitiva
// atómica InsertIfAbsent del repositorio en lugar de chequear y luego
// insertar en dos pasos.
func (uc *SyncUseCase) BulkSales(ctx context.Context, workspaceKey string, items []dto.SalePayload) (*dto.BulkSyncResponse, error) {
	res := &dto.BulkSyncResponse{OK: true, Errors: []dto.BulkRecordError{}}
	now := time.Now().UTC()

	for _, in := range items {
		if in.ID == "" {
			res.Errors = append(res.Errors, dto.BulkRecordError{ID: in.ID, Error: "missing id"})
			continue
		}
		outcome, err := uc.sales.InsertIfAbsent(ctx, buildSale(workspaceKey, in, now))
		if err != nil {
			res.Errors = append(res.Errors, dto.BulkRecordError{ID: in.ID, Error: err.Error()})
			continue
		}
		if outcome == repository.OutcomeInserted {
			res.Inserted++
		} else {
			res.Skipped++
		}
	}

	uc.notify(workspaceKey, "sales", res)
	return res, nil
}

func (uc *SyncUseCase) notify(workspaceKey, kind string, res *dto.BulkSyncResponse) {
	if uc.notifier != nil {
		uc.notifier.NotifyBulkResult(workspaceKey, kind, res)
	}
}
