package repository

import (
	"context"
	"time"

	"github.com/scannercafe/sync-api/internal/domain/entity"
)

// InsertOutcome clasifica el resultado de un insert idempotente: la venta se
// persistió o ya existía. Es una variante explícita en lugar de inspeccionar
// códigos de error del storage, para que el motor de sincronización no dependa
// del backend de persistencia.
type InsertOutcome int

const (
	// OutcomeInserted la venta era nueva y quedó persistida.
	OutcomeInserted InsertOutcome = iota
	// OutcomeSkipped ya existía una venta con el mismo (id, workspace).
	OutcomeSkipped
)

// SaleRepository define el puerto de persistencia para Sale (DIP).
// Las ventas son inmutables: no existe Update.
type SaleRepository interface {
	// Create persiste una venta nueva. Devuelve domain.ErrDuplicate si la
	// pareja (id, workspace) ya existe.
	Create(ctx context.Context, s *entity.Sale) error
	// InsertIfAbsent inserta solo si no existe (id, workspace), en una única
	// operación atómica del storage. Es la primitiva del camino bulk: dos
	// clientes reintentando el mismo lote nunca duplican ni fallan.
	InsertIfAbsent(ctx context.Context, s *entity.Sale) (InsertOutcome, error)
	// GetByID devuelve (nil, nil) cuando no existe.
	GetByID(ctx context.Context, workspaceKey, id string) (*entity.Sale, error)
	// ListByWorkspace lista todas las ventas ordenadas por createdAt descendente.
	ListByWorkspace(ctx context.Context, workspaceKey string) ([]*entity.Sale, error)
	// ListByDateRange lista las ventas con createdAt en [from, to], orden descendente.
	ListByDateRange(ctx context.Context, workspaceKey string, from, to time.Time) ([]*entity.Sale, error)
	// Delete es idempotente: borrar un id inexistente no es error.
	Delete(ctx context.Context, workspaceKey, id string) error
	// DeleteAll purga todas las ventas del workspace y devuelve cuántas eliminó.
	DeleteAll(ctx context.Context, workspaceKey string) (int64, error)
}
