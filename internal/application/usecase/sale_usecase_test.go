package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scannercafe/sync-api/internal/application/dto"
	"github.com/scannercafe/sync-api/internal/application/usecase"
	"github.com/scannercafe/sync-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Create replay-safe
// ──────────────────────────────────────────────────────────────────────────────

func TestSaleCreate_RequiereIdYTotal(t *testing.T) {
	uc := usecase.NewSaleUseCase(newFakeSaleRepo())

	_, err := uc.Create(context.Background(), "ws-1", dto.SalePayload{TotalUSD: 10.0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "venta sin id debe rechazarse")

	_, err = uc.Create(context.Background(), "ws-1", dto.SalePayload{ID: "s1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "venta sin totalUSD debe rechazarse")
}

func TestSaleCreate_ReenvioEsSkip(t *testing.T) {
	uc := usecase.NewSaleUseCase(newFakeSaleRepo())
	in := dto.SalePayload{ID: "s1", TotalUSD: 10.0}

	out, err := uc.Create(context.Background(), "ws-1", in)
	require.NoError(t, err)
	assert.False(t, out.Skipped)

	out, err = uc.Create(context.Background(), "ws-1", in)
	require.NoError(t, err)
	assert.True(t, out.Skipped)
	assert.Equal(t, "already_exists", out.Reason)
}

func TestSaleCreate_ExchangeRateCeroQuedaNil(t *testing.T) {
	repo := newFakeSaleRepo()
	uc := usecase.NewSaleUseCase(repo)

	_, err := uc.Create(context.Background(), "ws-1", dto.SalePayload{
		ID: "s1", TotalUSD: 10.0, ExchangeRate: 0,
	})
	require.NoError(t, err)

	s, err := repo.GetByID(context.Background(), "ws-1", "s1")
	require.NoError(t, err)
	assert.Nil(t, s.ExchangeRate, "una tasa de cambio cero no es una tasa")

	_, err = uc.Create(context.Background(), "ws-1", dto.SalePayload{
		ID: "s2", TotalUSD: 10.0, ExchangeRate: 36.5,
	})
	require.NoError(t, err)
	s, err = repo.GetByID(context.Background(), "ws-1", "s2")
	require.NoError(t, err)
	require.NotNil(t, s.ExchangeRate)
	assert.Equal(t, "36.5", s.ExchangeRate.String())
}

func TestSaleCreate_LineasCoaccionadas(t *testing.T) {
	repo := newFakeSaleRepo()
	uc := usecase.NewSaleUseCase(repo)

	_, err := uc.Create(context.Background(), "ws-1", dto.SalePayload{
		ID: "s1", TotalUSD: "10",
		Items: []dto.SaleItemPayload{
			{Name: "Café", Qty: "2", PriceUSD: 5.0, SubtotalUSD: "10"},
			{Name: "Bolsa", Qty: nil, PriceUSD: "basura"},
		},
	})
	require.NoError(t, err)

	s, err := repo.GetByID(context.Background(), "ws-1", "s1")
	require.NoError(t, err)
	require.Len(t, s.Items, 2)
	assert.Equal(t, 2, s.Items[0].Qty)
	assert.Equal(t, 0, s.Items[1].Qty)
	assert.True(t, s.Items[1].PriceUSD.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado y ventana diaria
// ──────────────────────────────────────────────────────────────────────────────

func TestDayWindow(t *testing.T) {
	from, to, err := usecase.DayWindow("2024-03-15")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 3, 15, 23, 59, 59, 999_000_000, time.UTC), to)

	_, _, err = usecase.DayWindow("15/03/2024")
	assert.Error(t, err, "formatos distintos de YYYY-MM-DD deben rechazarse")
}

func TestSaleList_FiltroPorDia(t *testing.T) {
	repo := newFakeSaleRepo()
	uc := usecase.NewSaleUseCase(repo)

	mk := func(id, ts string) {
		t.Helper()
		_, err := uc.Create(context.Background(), "ws-1", dto.SalePayload{
			ID: id, TotalUSD: 10.0, CreatedAt: ts,
		})
		require.NoError(t, err)
	}
	mk("s1", "2024-03-15T09:00:00Z")
	mk("s2", "2024-03-15T23:59:59Z")
	mk("s3", "2024-03-16T00:00:01Z")

	items, err := uc.List(context.Background(), "ws-1", "2024-03-15")
	require.NoError(t, err)
	require.Len(t, items, 2)
	// Más recientes primero.
	assert.Equal(t, "s2", items[0].ID)
	assert.Equal(t, "s1", items[1].ID)

	all, err := uc.List(context.Background(), "ws-1", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = uc.List(context.Background(), "ws-1", "basura")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Purga
// ──────────────────────────────────────────────────────────────────────────────

func TestSaleDeleteAll_SoloElWorkspace(t *testing.T) {
	repo := newFakeSaleRepo()
	uc := usecase.NewSaleUseCase(repo)

	for _, id := range []string{"s1", "s2", "s3"} {
		_, err := uc.Create(context.Background(), "ws-1", dto.SalePayload{ID: id, TotalUSD: 1.0})
		require.NoError(t, err)
	}
	_, err := uc.Create(context.Background(), "ws-2", dto.SalePayload{ID: "s1", TotalUSD: 1.0})
	require.NoError(t, err)

	n, err := uc.DeleteAll(context.Background(), "ws-1")
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	otros, err := uc.List(context.Background(), "ws-2", "")
	require.NoError(t, err)
	assert.Len(t, otros, 1, "la purga no debe tocar otros workspaces")
}
