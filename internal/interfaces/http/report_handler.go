package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/scannercafe/sync-api/internal/application/usecase"
	"github.com/scannercafe/sync-api/internal/domain"
)

// ReportHandler expone los reportes agregados del log de ventas.
type ReportHandler struct {
	reports *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(reports *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Summary godoc
// @Summary      Cierre diario
// @Description  Agrega las ventas de un día calendario UTC. ?date vacío = hoy.
// @Tags         reports
// @Produce      json
// @Param        X-Sync-Key  header  string  true   "Sync key del workspace"
// @Param        date        query   string  false  "Día calendario UTC (YYYY-MM-DD)"
// @Success      200  {object}  dto.SummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	ws := GetWorkspace(c)
	out, err := h.reports.Summary(c.UserContext(), ws.SyncKey, c.Query("date"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, "date debe tener formato YYYY-MM-DD")
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// SummaryPDF godoc
// @Summary      Cierre diario en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        X-Sync-Key  header  string  true   "Sync key del workspace"
// @Param        date        query   string  false  "Día calendario UTC (YYYY-MM-DD)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/summary/pdf [get]
func (h *ReportHandler) SummaryPDF(c *fiber.Ctx) error {
	ws := GetWorkspace(c)
	date := c.Query("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}
	doc, err := h.reports.SummaryPDF(c.UserContext(), ws.SyncKey, ws.Business, date)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, "date debe tener formato YYYY-MM-DD")
		}
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=cierre-%s.pdf", date))
	return c.Send(doc)
}

// Range godoc
// @Summary      Reporte por rango de fechas
// @Description  Agrupa las ventas por día descendente entre from y to inclusive.
// @Tags         reports
// @Produce      json
// @Param        X-Sync-Key  header  string  true  "Sync key del workspace"
// @Param        from        query   string  true  "Inicio (YYYY-MM-DD)"
// @Param        to          query   string  true  "Fin (YYYY-MM-DD)"
// @Success      200  {object}  dto.RangeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/range [get]
func (h *ReportHandler) Range(c *fiber.Ctx) error {
	ws := GetWorkspace(c)
	out, err := h.reports.Range(c.UserContext(), ws.SyncKey, c.Query("from"), c.Query("to"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, "from y to son requeridos con formato YYYY-MM-DD")
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// RangeExport godoc
// @Summary      Reporte por rango como libro XLSX
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        X-Sync-Key  header  string  true  "Sync key del workspace"
// @Param        from        query   string  true  "Inicio (YYYY-MM-DD)"
// @Param        to          query   string  true  "Fin (YYYY-MM-DD)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/range/export [get]
func (h *ReportHandler) RangeExport(c *fiber.Ctx) error {
	ws := GetWorkspace(c)
	from, to := c.Query("from"), c.Query("to")
	book, err := h.reports.RangeExcel(c.UserContext(), ws.SyncKey, ws.Business, from, to)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, "from y to son requeridos con formato YYYY-MM-DD")
		}
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=ventas-%s-%s.xlsx", from, to))
	return c.Send(book)
}
