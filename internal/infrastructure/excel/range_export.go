// Package excel exporta el reporte por rango como libro XLSX, pensado para
// que el dueño del negocio lo abra directo en una hoja de cálculo.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/scannercafe/sync-api/internal/application/dto"
	"github.com/scannercafe/sync-api/internal/application/usecase"
)

var _ usecase.RangeExcelExporter = (*RangeExporter)(nil)

// rangeHeader columnas del reporte diario.
var rangeHeader = []string{"Fecha", "Ventas", "Total USD", "Total VEF"}

// RangeExporter implementa usecase.RangeExcelExporter usando excelize.
type RangeExporter struct{}

// NewRangeExporter construye el exportador.
func NewRangeExporter() *RangeExporter { return &RangeExporter{} }

// GenerateRangeWorkbook genera el libro con una fila por día y una fila final
// de totales, y devuelve sus bytes.
func (e *RangeExporter) GenerateRangeWorkbook(business string, report *dto.RangeResponse) ([]byte, error) {
	f := excelize.NewFile()

	sheetName := "Ventas por día"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("excel: crear hoja: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("excel: estilo de encabezado: %w", err)
	}

	// Título: negocio y rango del reporte.
	_ = f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s — ventas del %s al %s", business, report.From, report.To))
	_ = f.MergeCell(sheetName, "A1", "D1")

	for i, h := range rangeHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		_ = f.SetCellValue(sheetName, cell, h)
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	rowIdx := 3
	for _, b := range report.ByDate {
		totalUSD, _ := b.TotalUSD.Float64()
		totalVEF, _ := b.TotalVEF.Float64()
		_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowIdx), b.Date)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowIdx), b.Count)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowIdx), totalUSD)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowIdx), totalVEF)
		rowIdx++
	}

	grandTotal, _ := report.TotalUSD.Float64()
	_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowIdx), "TOTAL")
	_ = f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowIdx), report.TotalSales)
	_ = f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowIdx), grandTotal)

	_ = f.SetColWidth(sheetName, "A", "D", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("excel: cerrar libro: %w", err)
	}
	return buf.Bytes(), nil
}
