package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/scannercafe/sync-api/internal/application/dto"
	"github.com/scannercafe/sync-api/internal/domain"
	"github.com/scannercafe/sync-api/internal/domain/repository"
)

// ReportUseCase reportes derivados del log de ventas bajo demanda, sin vistas
// materializadas. Los totales guardados en cada venta son la fuente
// autoritativa; nunca se recalculan desde las líneas.
type ReportUseCase struct {
	sales repository.SaleRepository
	pdf   SummaryPDFGenerator // opcional
	excel RangeExcelExporter  // opcional
}

// NewReportUseCase construye el agregador. pdf y excel pueden ser nil si no
// se exponen los exports.
func NewReportUseCase(sales repository.SaleRepository, pdf SummaryPDFGenerator, excel RangeExcelExporter) *ReportUseCase {
	return &ReportUseCase{sales: sales, pdf: pdf, excel: excel}
}

const topProductsLimit = 10

// Summary agrega las ventas de un día calendario UTC. date vacío = hoy.
func (uc *ReportUseCase) Summary(ctx context.Context, workspaceKey, date string) (*dto.SummaryResponse, error) {
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}
	from, to, err := DayWindow(date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	sales, err := uc.sales.ListByDateRange(ctx, workspaceKey, from, to)
	if err != nil {
		return nil, err
	}

	totalUSD := decimal.Zero
	totalVEF := decimal.Zero
	totalUnits := 0
	type acc struct {
		qty   int
		total decimal.Decimal
		order int // primera aparición, para desempate estable
	}
	byName := make(map[string]*acc)
	for _, s := range sales {
		totalUSD = totalUSD.Add(s.TotalUSD)
		totalVEF = totalVEF.Add(s.TotalVEF)
		for _, it := range s.Items {
			totalUnits += it.Qty
			a, ok := byName[it.Name]
			if !ok {
				a = &acc{total: decimal.Zero, order: len(byName)}
				byName[it.Name] = a
			}
			a.qty += it.Qty
			a.total = a.total.Add(it.SubtotalUSD)
		}
	}

	top := make([]dto.TopProductDTO, 0, len(byName))
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := byName[names[i]], byName[names[j]]
		if a.qty != b.qty {
			return a.qty > b.qty
		}
		return a.order < b.order
	})
	for _, name := range names {
		top = append(top, dto.TopProductDTO{Name: name, Qty: byName[name].qty, Total: byName[name].total})
	}
	if len(top) > topProductsLimit {
		top = top[:topProductsLimit]
	}

	avgTicket := decimal.Zero
	if len(sales) > 0 {
		avgTicket = totalUSD.Div(decimal.NewFromInt(int64(len(sales))))
	}

	return &dto.SummaryResponse{
		Date:        date,
		TotalSales:  len(sales),
		TotalUSD:    totalUSD.Round(2),
		TotalVEF:    totalVEF.Round(2),
		TotalUnits:  totalUnits,
		AvgTicket:   avgTicket.Round(2),
		TopProducts: top,
	}, nil
}

// Range agrega las ventas entre dos fechas calendario UTC inclusive,
// agrupadas por día descendente. from y to son obligatorios.
func (uc *ReportUseCase) Range(ctx context.Context, workspaceKey, from, to string) (*dto.RangeResponse, error) {
	if from == "" || to == "" {
		return nil, domain.ErrInvalidInput
	}
	start, _, err := DayWindow(from)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	_, end, err := DayWindow(to)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	sales, err := uc.sales.ListByDateRange(ctx, workspaceKey, start, end)
	if err != nil {
		return nil, err
	}

	totalUSD := decimal.Zero
	buckets := make(map[string]*dto.RangeBucketDTO)
	for _, s := range sales {
		totalUSD = totalUSD.Add(s.TotalUSD)
		day := s.CreatedAt.UTC().Format("2006-01-02")
		b, ok := buckets[day]
		if !ok {
			b = &dto.RangeBucketDTO{Date: day, TotalUSD: decimal.Zero, TotalVEF: decimal.Zero}
			buckets[day] = b
		}
		b.Count++
		b.TotalUSD = b.TotalUSD.Add(s.TotalUSD)
		b.TotalVEF = b.TotalVEF.Add(s.TotalVEF)
	}

	byDate := make([]dto.RangeBucketDTO, 0, len(buckets))
	for _, b := range buckets {
		byDate = append(byDate, *b)
	}
	sort.Slice(byDate, func(i, j int) bool { return byDate[i].Date > byDate[j].Date })

	return &dto.RangeResponse{
		From:       from,
		To:         to,
		TotalSales: len(sales),
		TotalUSD:   totalUSD.Round(2),
		ByDate:     byDate,
	}, nil
}

// SummaryPDF genera el cierre diario en PDF.
func (uc *ReportUseCase) SummaryPDF(ctx context.Context, workspaceKey, business, date string) ([]byte, error) {
	summary, err := uc.Summary(ctx, workspaceKey, date)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateSummaryPDF(business, summary)
}

// RangeExcel genera el reporte por rango como libro XLSX.
func (uc *ReportUseCase) RangeExcel(ctx context.Context, workspaceKey, business, from, to string) ([]byte, error) {
	report, err := uc.Range(ctx, workspaceKey, from, to)
	if err != nil {
		return nil, err
	}
	return uc.excel.GenerateRangeWorkbook(business, report)
}
