package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettingsPayload entrada de PUT /settings. TaxPercent se coacciona a 0 si
// es inválido; ExchangeRate vacío cae al default del sistema.
type SettingsPayload struct {
	BusinessName string `json:"businessName"`
	TaxPercent   any    `json:"taxPercent"`
	ExchangeRate string `json:"exchangeRate"`
}

// SettingsResponse salida de GET /settings. Cuando el workspace nunca guardó
// settings se responde con los defaults del workspace (UpdatedAt en cero).
type SettingsResponse struct {
	BusinessName string          `json:"businessName"`
	TaxPercent   decimal.Decimal `json:"taxPercent"`
	ExchangeRate string          `json:"exchangeRate"`
	UpdatedAt    *time.Time      `json:"updatedAt,omitempty"`
}
