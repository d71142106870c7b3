package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/scannercafe/sync-api/internal/application/dto"
	"github.com/scannercafe/sync-api/internal/application/usecase"
	"github.com/scannercafe/sync-api/internal/domain"
)

// ProductHandler maneja el catálogo de productos del workspace.
type ProductHandler struct {
	products *usecase.ProductUseCase
	sync     *usecase.SyncUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(products *usecase.ProductUseCase, sync *usecase.SyncUseCase) *ProductHandler {
	return &ProductHandler{products: products, sync: sync}
}

// List godoc
// @Summary      Listar catálogo completo
// @Tags         products
// @Produce      json
// @Param        X-Sync-Key  header  string  true  "Sync key del workspace"
// @Success      200  {array}   dto.ProductResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	ws := GetWorkspace(c)
	items, err := h.products.List(c.UserContext(), ws.SyncKey)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(items)
}

// GetByBarcode godoc
// @Summary      Buscar producto por código de barras
// @Tags         products
// @Produce      json
// @Param        X-Sync-Key  header  string  true  "Sync key del workspace"
// @Param        barcode     path    string  true  "Código de barras"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/barcode/{barcode} [get]
func (h *ProductHandler) GetByBarcode(c *fiber.Ctx) error {
	ws := GetWorkspace(c)
	p, err := h.products.GetByBarcode(c.UserContext(), ws.SyncKey, c.Params("barcode"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "producto no encontrado")
		}
		return internalError(c, err)
	}
	return c.JSON(p)
}

// GetByID godoc
// @Summary      Obtener producto por id
// @Tags         products
// @Produce      json
// @Param        X-Sync-Key  header  string  true  "Sync key del workspace"
// @Param        id          path    string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	ws := GetWorkspace(c)
	p, err := h.products.GetByID(c.UserContext(), ws.SyncKey, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "producto no encontrado")
		}
		return internalError(c, err)
	}
	return c.JSON(p)
}

// Create godoc
// @Summary      Crear producto (replay-safe)
// @Description  Un id ya existente responde ok+skipped; un barcode usado por otro producto responde 409 con el id en conflicto.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        X-Sync-Key  header  string              true  "Sync key del workspace"
// @Param        body        body    dto.ProductPayload  true  "Producto"
// @Success      201  {object}  dto.SyncStatusResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.BarcodeConflictResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	ws := GetWorkspace(c)
	var in dto.ProductPayload
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.products.Create(c.UserContext(), ws.SyncKey, in)
	if err != nil {
		var conflict *domain.BarcodeConflictError
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return badRequest(c, "id y name son requeridos")
		case errors.As(err, &conflict):
			return c.Status(fiber.StatusConflict).JSON(dto.BarcodeConflictResponse{
				Code:       "BARCODE_CONFLICT",
				Message:    "el código de barras ya pertenece a otro producto",
				ConflictID: conflict.ConflictID,
			})
		default:
			return internalError(c, err)
		}
	}
	if out.Skipped {
		return c.JSON(out)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        X-Sync-Key  header  string              true  "Sync key del workspace"
// @Param        id          path    string              true  "ID del producto"
// @Param        body        body    dto.ProductPayload  true  "Campos del producto"
// @Success      200  {object}  dto.SyncStatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	ws := GetWorkspace(c)
	var in dto.ProductPayload
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := h.products.Update(c.UserContext(), ws.SyncKey, c.Params("id"), in); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "producto no encontrado")
		}
		return internalError(c, err)
	}
	return c.JSON(dto.SyncStatusResponse{OK: true})
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Produce      json
// @Param        X-Sync-Key  header  string  true  "Sync key del workspace"
// @Param        id          path    string  true  "ID del producto"
// @Success      200  {object}  dto.SyncStatusResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	ws := GetWorkspace(c)
	if err := h.products.Delete(c.UserContext(), ws.SyncKey, c.Params("id")); err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.SyncStatusResponse{OK: true})
}

// Bulk godoc
// @Summary      Sincronizar lote de productos
// @Description  Clasifica cada registro como inserted, skipped o error; el lote nunca aborta por un registro inválido.
// @Tags         sync
// @Accept       json
// @Produce      json
// @Param        X-Sync-Key  header  string                   true  "Sync key del workspace"
// @Param        body        body    dto.BulkProductsRequest  true  "Lote de productos"
// @Success      200  {object}  dto.BulkSyncResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/bulk [post]
func (h *ProductHandler) Bulk(c *fiber.Ctx) error {
	ws := GetWorkspace(c)
	var in dto.BulkProductsRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Products == nil {
		return badRequest(c, "products es requerido")
	}
	out, err := h.sync.BulkProducts(c.UserContext(), ws.SyncKey, in.Products)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}
