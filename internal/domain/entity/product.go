package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de un workspace.
// El ID lo asigna el cliente (caja); la pareja (ID, WorkspaceKey) es única.
// El barcode no es único: solo se valida el conflicto con un id distinto al crear.
type Product struct {
	ID           string
	WorkspaceKey string
	Barcode      *string
	Name         string
	Category     *string
	PriceUSD     decimal.Decimal
	Stock        int
	Image        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
