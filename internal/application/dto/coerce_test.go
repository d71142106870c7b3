package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scannercafe/sync-api/internal/application/dto"
)

// Las cajas viejas envían numéricos como string; las nuevas como número. El
// decoder deja ambos en `any` y la coerción decide, nunca el unmarshal.

func TestCoerceDecimal(t *testing.T) {
	assert.Equal(t, "4.5", dto.CoerceDecimal(4.5).String())
	assert.Equal(t, "4.5", dto.CoerceDecimal("4.5").String())
	assert.Equal(t, "7", dto.CoerceDecimal(json.Number("7")).String())
	assert.True(t, dto.CoerceDecimal(nil).IsZero())
	assert.True(t, dto.CoerceDecimal("basura").IsZero())
	assert.True(t, dto.CoerceDecimal(map[string]any{"x": 1}).IsZero())
}

func TestCoerceInt(t *testing.T) {
	assert.Equal(t, 7, dto.CoerceInt(7.0))
	assert.Equal(t, 7, dto.CoerceInt("7"))
	assert.Equal(t, 7, dto.CoerceInt("7.9"), "los flotantes se truncan")
	assert.Equal(t, 0, dto.CoerceInt(nil))
	assert.Equal(t, 0, dto.CoerceInt("abc"))
}

func TestCoerceOptionalDecimal(t *testing.T) {
	assert.Nil(t, dto.CoerceOptionalDecimal(nil))
	assert.Nil(t, dto.CoerceOptionalDecimal(0.0), "cero cuenta como ausente")
	assert.Nil(t, dto.CoerceOptionalDecimal("basura"))

	d := dto.CoerceOptionalDecimal(36.5)
	require.NotNil(t, d)
	assert.Equal(t, "36.5", d.String())
}

func TestParseTimeOr(t *testing.T) {
	fallback := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	got := dto.ParseTimeOr("2024-03-15T09:30:00Z", fallback)
	assert.Equal(t, time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC), got)

	assert.Equal(t, fallback, dto.ParseTimeOr("", fallback))
	assert.Equal(t, fallback, dto.ParseTimeOr("ayer", fallback))

	// Offset no UTC: se normaliza a UTC.
	got = dto.ParseTimeOr("2024-03-15T09:30:00-04:00", fallback)
	assert.Equal(t, time.Date(2024, 3, 15, 13, 30, 0, 0, time.UTC), got)
}

// El payload de producto acepta numéricos heterogéneos sin fallar el decode.
func TestProductPayload_DecodeHeterogeneo(t *testing.T) {
	var p dto.ProductPayload
	require.NoError(t, json.Unmarshal([]byte(`{"id":"p1","name":"Café","priceUSD":"4.50","stock":3}`), &p))
	assert.Equal(t, "4.5", dto.CoerceDecimal(p.PriceUSD).String())
	assert.Equal(t, 3, dto.CoerceInt(p.Stock))

	require.NoError(t, json.Unmarshal([]byte(`{"id":"p1","name":"Café","priceUSD":4.5}`), &p))
	assert.Equal(t, "4.5", dto.CoerceDecimal(p.PriceUSD).String())
}
