package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings configuración por workspace: una fila por tenant, creada de forma
// diferida en la primera escritura. ExchangeRate se conserva como string
// decimal tal cual lo envía la caja (default "36.50").
type Settings struct {
	WorkspaceKey string
	BusinessName string
	TaxPercent   decimal.Decimal
	ExchangeRate string
	UpdatedAt    time.Time
}

// DefaultExchangeRate tasa VEF/USD usada cuando el workspace aún no guarda settings.
const DefaultExchangeRate = "36.50"
