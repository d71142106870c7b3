package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem es una línea de venta: snapshot de cantidad y precio al momento
// de vender, independiente del estado actual del catálogo.
type SaleItem struct {
	ProductID   *string         `json:"productId"`
	Name        string          `json:"name"`
	Qty         int             `json:"qty"`
	PriceUSD    decimal.Decimal `json:"priceUSD"`
	SubtotalUSD decimal.Decimal `json:"subtotalUSD"`
}

// Sale representa una venta inmutable: una vez creada solo puede eliminarse.
// TotalUSD/TotalVEF son los totales calculados por la caja y son la fuente
// autoritativa para los reportes (no se recalculan desde Items).
// ExchangeRate es nil cuando la caja no lo reportó (no cero).
type Sale struct {
	ID           string
	WorkspaceKey string
	Items        []SaleItem
	TotalUSD     decimal.Decimal
	TotalVEF     decimal.Decimal
	ExchangeRate *decimal.Decimal
	CreatedAt    time.Time
}
