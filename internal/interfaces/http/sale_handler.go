package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/scannercafe/sync-api/internal/application/dto"
	"github.com/scannercafe/sync-api/internal/application/usecase"
	"github.com/scannercafe/sync-api/internal/domain"
)

// SaleHandler maneja el log inmutable de ventas del workspace.
type SaleHandler struct {
	sales *usecase.SaleUseCase
	sync  *usecase.SyncUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(sales *usecase.SaleUseCase, sync *usecase.SyncUseCase) *SaleHandler {
	return &SaleHandler{sales: sales, sync: sync}
}

// List godoc
// @Summary      Listar ventas
// @Description  Más recientes primero. ?date=YYYY-MM-DD restringe a un día calendario UTC.
// @Tags         sales
// @Produce      json
// @Param        X-Sync-Key  header  string  true   "Sync key del workspace"
// @Param        date        query   string  false  "Día calendario UTC (YYYY-MM-DD)"
// @Success      200  {array}   dto.SaleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	ws := GetWorkspace(c)
	items, err := h.sales.List(c.UserContext(), ws.SyncKey, c.Query("date"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, "date debe tener formato YYYY-MM-DD")
		}
		return internalError(c, err)
	}
	return c.JSON(items)
}

// GetByID godoc
// @Summary      Obtener venta por id
// @Tags         sales
// @Produce      json
// @Param        X-Sync-Key  header  string  true  "Sync key del workspace"
// @Param        id          path    string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	ws := GetWorkspace(c)
	s, err := h.sales.GetByID(c.UserContext(), ws.SyncKey, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "venta no encontrada")
		}
		return internalError(c, err)
	}
	return c.JSON(s)
}

// Create godoc
// @Summary      Registrar venta (replay-safe)
// @Description  Un id ya existente responde ok+skipped en lugar de error.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        X-Sync-Key  header  string           true  "Sync key del workspace"
// @Param        body        body    dto.SalePayload  true  "Venta"
// @Success      201  {object}  dto.SyncStatusResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	ws := GetWorkspace(c)
	var in dto.SalePayload
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.sales.Create(c.UserContext(), ws.SyncKey, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, "id y totalUSD son requeridos")
		}
		return internalError(c, err)
	}
	if out.Skipped {
		return c.JSON(out)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Bulk godoc
// @Summary      Sincronizar lote de ventas
// @Description  Inserción atómica por registro: lotes solapados de varias cajas concurrentes no duplican ventas.
// @Tags         sync
// @Accept       json
// @Produce      json
// @Param        X-Sync-Key  header  string                true  "Sync key del workspace"
// @Param        body        body    dto.BulkSalesRequest  true  "Lote de ventas"
// @Success      200  {object}  dto.BulkSyncResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales/bulk [post]
func (h *SaleHandler) Bulk(c *fiber.Ctx) error {
	ws := GetWorkspace(c)
	var in dto.BulkSalesRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Sales == nil {
		return badRequest(c, "sales es requerido")
	}
	out, err := h.sync.BulkSales(c.UserContext(), ws.SyncKey, in.Sales)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// DeleteAll godoc
// @Summary      Purgar todas las ventas del workspace
// @Description  Irreversible. Devuelve cuántas ventas eliminó.
// @Tags         sales
// @Produce      json
// @Param        X-Sync-Key  header  string  true  "Sync key del workspace"
// @Success      200  {object}  dto.DeletedResponse
// @Router       /api/sales/all [delete]
func (h *SaleHandler) DeleteAll(c *fiber.Ctx) error {
	ws := GetWorkspace(c)
	n, err := h.sales.DeleteAll(c.UserContext(), ws.SyncKey)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.DeletedResponse{OK: true, Deleted: n})
}

// Delete godoc
// @Summary      Eliminar venta por id
// @Tags         sales
// @Produce      json
// @Param        X-Sync-Key  header  string  true  "Sync key del workspace"
// @Param        id          path    string  true  "ID de la venta"
// @Success      200  {object}  dto.SyncStatusResponse
// @Router       /api/sales/{id} [delete]
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	ws := GetWorkspace(c)
	if err := h.sales.Delete(c.UserContext(), ws.SyncKey, c.Params("id")); err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.SyncStatusResponse{OK: true})
}
