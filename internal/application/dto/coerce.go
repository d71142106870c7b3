package dto

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Coerción permisiva de campos numéricos: las cajas offline envían números,
// strings o basura según la versión del cliente, y rechazar un registro por
// un numérico inválido rompería el replay del lote completo. La política es
// coaccionar a 0, nunca fallar. No "mejorar" a validación estricta.

// CoerceDecimal convierte cualquier valor JSON a decimal; inválido/ausente -> 0.
func CoerceDecimal(v any) decimal.Decimal {
	switch n := v.(type) {
	case nil:
		return decimal.Zero
	case float64:
		return decimal.NewFromFloat(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Zero
		}
		return d
	case decimal.Decimal:
		return n
	default:
		return decimal.Zero
	}
}

// CoerceInt convierte cualquier valor JSON a entero; inválido/ausente -> 0.
// Los flotantes se truncan (semántica parseInt).
func CoerceInt(v any) int {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return int(f)
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return int(f)
		}
		return 0
	default:
		return 0
	}
}

// CoerceOptionalDecimal convierte a decimal opcional; ausente, inválido o
// cero -> nil (una tasa de cambio cero no es una tasa).
func CoerceOptionalDecimal(v any) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := CoerceDecimal(v)
	if d.IsZero() {
		return nil
	}
	return &d
}

// ParseTimeOr interpreta un timestamp RFC3339 del cliente; inválido/vacío -> fallback.
func ParseTimeOr(s string, fallback time.Time) time.Time {
	if s == "" {
		return fallback
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fallback
	}
	return t.UTC()
}
