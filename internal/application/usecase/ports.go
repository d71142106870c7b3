package usecase

import "github.com/scannercafe/sync-api/internal/application/dto"

// SyncNotifier publica el resultado de un lote bulk hacia integraciones
// externas. La implementación no debe bloquear el request.
type SyncNotifier interface {
	NotifyBulkResult(workspaceKey, kind string, result *dto.BulkSyncResponse)
}

// SummaryPDFGenerator genera el PDF del cierre diario.
type SummaryPDFGenerator interface {
	GenerateSummaryPDF(business string, summary *dto.SummaryResponse) ([]byte, error)
}

// RangeExcelExporter genera el libro XLSX del reporte por rango.
type RangeExcelExporter interface {
	GenerateRangeWorkbook(business string, report *dto.RangeResponse) ([]byte, error)
}
