package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemPayload línea de venta tal como llega de la caja. Los numéricos se
// coaccionan a 0 cuando faltan o son inválidos.
type SaleItemPayload struct {
	ProductID   *string `json:"productId"`
	Name        string  `json:"name"`
	Qty         any     `json:"qty"`
	PriceUSD    any     `json:"priceUSD"`
	SubtotalUSD any     `json:"subtotalUSD"`
}

// SalePayload entrada para crear/sincronizar una venta. TotalUSD se declara
// `any` para distinguir ausente (inválido: la venta se rechaza) de un valor
// coaccionable; ExchangeRate ausente o inválido queda en nil, no en 0.
type SalePayload struct {
	ID           string            `json:"id"`
	Items        []SaleItemPayload `json:"items"`
	TotalUSD     any               `json:"totalUSD"`
	TotalVEF     any               `json:"totalVEF"`
	ExchangeRate any               `json:"exchangeRate"`
	CreatedAt    string            `json:"createdAt"`
}

// BulkSalesRequest lote de ventas a sincronizar.
type BulkSalesRequest struct {
	Sales []SalePayload `json:"sales"`
}

// SaleItemDTO línea de venta en respuestas.
type SaleItemDTO struct {
	ProductID   *string         `json:"productId"`
	Name        string          `json:"name"`
	Qty         int             `json:"qty"`
	PriceUSD    decimal.Decimal `json:"priceUSD"`
	SubtotalUSD decimal.Decimal `json:"subtotalUSD"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID           string           `json:"id"`
	Workspace    string           `json:"workspace"`
	Items        []SaleItemDTO    `json:"items"`
	TotalUSD     decimal.Decimal  `json:"totalUSD"`
	TotalVEF     decimal.Decimal  `json:"totalVEF"`
	ExchangeRate *decimal.Decimal `json:"exchangeRate"`
	CreatedAt    time.Time        `json:"createdAt"`
}
