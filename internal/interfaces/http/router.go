// Package http arma las rutas Fiber de la API de sincronización. Todas las
// rutas salvo el registro exigen el header X-Sync-Key resuelto a un workspace.
package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/scannercafe/sync-api/internal/application/dto"
	"github.com/scannercafe/sync-api/internal/application/usecase"
)

// RouterDeps casos de uso que el router conecta a handlers.
type RouterDeps struct {
	Workspaces *usecase.WorkspaceUseCase
	Products   *usecase.ProductUseCase
	Sales      *usecase.SaleUseCase
	Sync       *usecase.SyncUseCase
	Reports    *usecase.ReportUseCase
	Settings   *usecase.SettingsUseCase
}

// Router registra todas las rutas de la API bajo /api.
func Router(app *fiber.App, deps RouterDeps) {
	workspaceHandler := NewWorkspaceHandler(deps.Workspaces)
	productHandler := NewProductHandler(deps.Products, deps.Sync)
	saleHandler := NewSaleHandler(deps.Sales, deps.Sync)
	reportHandler := NewReportHandler(deps.Reports)
	settingsHandler := NewSettingsHandler(deps.Settings)

	requireWorkspace := RequireWorkspace(deps.Workspaces)

	api := app.Group("/api")

	// Registro: única ruta sin workspace resuelto.
	workspaces := api.Group("/workspaces")
	workspaces.Post("/register", workspaceHandler.Register)
	workspaces.Get("/info", requireWorkspace, workspaceHandler.Info)

	products := api.Group("/products", requireWorkspace)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Post("/bulk", productHandler.Bulk)
	// barcode antes de :id para que "barcode" no se capture como id.
	products.Get("/barcode/:barcode", productHandler.GetByBarcode)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	sales := api.Group("/sales", requireWorkspace)
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Create)
	sales.Post("/bulk", saleHandler.Bulk)
	// /all antes de :id para que la purga no se capture como id.
	sales.Delete("/all", saleHandler.DeleteAll)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Delete("/:id", saleHandler.Delete)

	reports := api.Group("/reports", requireWorkspace)
	reports.Get("/summary", reportHandler.Summary)
	reports.Get("/summary/pdf", reportHandler.SummaryPDF)
	reports.Get("/range", reportHandler.Range)
	reports.Get("/range/export", reportHandler.RangeExport)

	settings := api.Group("/settings", requireWorkspace)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Put)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: msg})
}

func internalError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
