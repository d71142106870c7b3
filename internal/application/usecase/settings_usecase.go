package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/scannercafe/sync-api/internal/application/dto"
	"github.com/scannercafe/sync-api/internal/domain/entity"
	"github.com/scannercafe/sync-api/internal/domain/repository"
)

// SettingsUseCase configuración por workspace. La fila se crea de forma
// diferida en la primera escritura; la lectura sin fila responde los
// defaults del workspace.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve los settings guardados o los defaults del workspace.
func (uc *SettingsUseCase) Get(ctx context.Context, ws *entity.Workspace) (*dto.SettingsResponse, error) {
	s, err := uc.repo.Get(ctx, ws.SyncKey)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return &dto.SettingsResponse{
			BusinessName: ws.Business,
			TaxPercent:   decimal.Zero,
			ExchangeRate: entity.DefaultExchangeRate,
		}, nil
	}
	updated := s.UpdatedAt
	return &dto.SettingsResponse{
		BusinessName: s.BusinessName,
		TaxPercent:   s.TaxPercent,
		ExchangeRate: s.ExchangeRate,
		UpdatedAt:    &updated,
	}, nil
}

// Update hace upsert de los settings del workspace. businessName vacío cae al
// nombre del workspace; exchangeRate vacío al default del sistema.
func (uc *SettingsUseCase) Update(ctx context.Context, ws *entity.Workspace, in dto.SettingsPayload) error {
	businessName := in.BusinessName
	if businessName == "" {
		businessName = ws.Business
	}
	exchangeRate := in.ExchangeRate
	if exchangeRate == "" {
		exchangeRate = entity.DefaultExchangeRate
	}
	return uc.repo.Upsert(ctx, &entity.Settings{
		WorkspaceKey: ws.SyncKey,
		BusinessName: businessName,
		TaxPercent:   dto.CoerceDecimal(in.TaxPercent),
		ExchangeRate: exchangeRate,
		UpdatedAt:    time.Now().UTC(),
	})
}
