// Package pdf genera el cierre diario en PDF para imprimir o archivar.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Negocio  │  Fecha del reporte                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MÉTRICAS: Ventas / Total USD / Total VEF / Unidades / Avg  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Cantidad | Total USD (top 10)            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/scannercafe/sync-api/internal/application/dto"
	"github.com/scannercafe/sync-api/internal/application/usecase"
)

var _ usecase.SummaryPDFGenerator = (*SummaryPDFGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// SummaryPDFGenerator implementa usecase.SummaryPDFGenerator usando Maroto v2.
type SummaryPDFGenerator struct{}

// NewSummaryPDFGenerator construye el generador.
func NewSummaryPDFGenerator() *SummaryPDFGenerator { return &SummaryPDFGenerator{} }

// GenerateSummaryPDF genera el PDF del cierre diario y devuelve sus bytes.
func (g *SummaryPDFGenerator) GenerateSummaryPDF(business string, summary *dto.SummaryResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cierre diario", true).
		WithAuthor(business, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(business, summary.Date))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(metricsRows(summary)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, p := range summary.TopProducts {
		m.AddRows(productRow(p))
	}
	if len(summary.TopProducts) == 0 {
		m.AddRows(row.New(8).Add(
			col.New(12).Add(text.New("Sin ventas registradas este día", props.Text{
				Size: 9, Color: colorGray, Align: align.Center, Top: 2,
			})),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del negocio (izq) y fecha del cierre (der).
func headerRow(business, date string) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(business, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Cierre diario de ventas", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(date, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 3,
			}),
		),
	)
}

func metricsRows(s *dto.SummaryResponse) []core.Row {
	metrics := []struct {
		label string
		value string
	}{
		{"Ventas", fmt.Sprintf("%d", s.TotalSales)},
		{"Total USD", "$ " + s.TotalUSD.StringFixed(2)},
		{"Total VEF", "Bs " + s.TotalVEF.StringFixed(2)},
		{"Unidades", fmt.Sprintf("%d", s.TotalUnits)},
		{"Ticket promedio", "$ " + s.AvgTicket.StringFixed(2)},
	}
	rows := make([]core.Row, 0, len(metrics))
	for _, mt := range metrics {
		rows = append(rows, row.New(7).Add(
			col.New(4).Add(text.New(mt.label, props.Text{Size: 9, Color: colorGray, Top: 1})),
			col.New(8).Add(text.New(mt.value, props.Text{Size: 10, Style: fontstyle.Bold, Top: 1})),
		))
	}
	return rows
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}
	return row.New(9).Add(
		col.New(7).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("Cant.", props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2, Align: align.Right,
		})),
		col.New(3).Add(text.New("Total USD", props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2, Align: align.Right,
		})),
	)
}

func productRow(p dto.TopProductDTO) core.Row {
	return row.New(7).Add(
		col.New(7).Add(text.New(p.Name, props.Text{Size: 9, Top: 1})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", p.Qty), props.Text{Size: 9, Top: 1, Align: align.Right})),
		col.New(3).Add(text.New(p.Total.StringFixed(2), props.Text{Size: 9, Top: 1, Align: align.Right})),
	)
}
