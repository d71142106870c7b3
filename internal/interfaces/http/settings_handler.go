package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/scannercafe/sync-api/internal/application/dto"
	"github.com/scannercafe/sync-api/internal/application/usecase"
)

// SettingsHandler maneja la configuración por workspace.
type SettingsHandler struct {
	settings *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(settings *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// Get godoc
// @Summary      Obtener configuración del workspace
// @Description  Sin fila guardada responde los defaults del workspace.
// @Tags         settings
// @Produce      json
// @Param        X-Sync-Key  header  string  true  "Sync key del workspace"
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	ws := GetWorkspace(c)
	out, err := h.settings.Get(c.UserContext(), ws)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Put godoc
// @Summary      Guardar configuración del workspace
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        X-Sync-Key  header  string               true  "Sync key del workspace"
// @Param        body        body    dto.SettingsPayload  true  "Configuración"
// @Success      200  {object}  dto.SyncStatusResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/settings [put]
func (h *SettingsHandler) Put(c *fiber.Ctx) error {
	ws := GetWorkspace(c)
	var in dto.SettingsPayload
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := h.settings.Update(c.UserContext(), ws, in); err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.SyncStatusResponse{OK: true})
}
