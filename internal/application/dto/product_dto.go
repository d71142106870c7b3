package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductPayload entrada para crear/actualizar/sincronizar un producto.
// PriceUSD y Stock son `any` a propósito: se coaccionan con CoerceDecimal /
// CoerceInt en lugar de rechazar el registro (ver coerce.go).
type ProductPayload struct {
	ID        string  `json:"id"`
	Barcode   *string `json:"barcode"`
	Name      string  `json:"name"`
	Category  *string `json:"category"`
	PriceUSD  any     `json:"priceUSD"`
	Stock     any     `json:"stock"`
	Image     *string `json:"image"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// BulkProductsRequest lote de productos a sincronizar.
type BulkProductsRequest struct {
	Products []ProductPayload `json:"products"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Workspace string          `json:"workspace"`
	Barcode   *string         `json:"barcode"`
	Name      string          `json:"name"`
	Category  *string         `json:"category"`
	PriceUSD  decimal.Decimal `json:"priceUSD"`
	Stock     int             `json:"stock"`
	Image     *string         `json:"image"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
