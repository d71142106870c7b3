package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/scannercafe/sync-api/internal/application/dto"
	"github.com/scannercafe/sync-api/internal/application/usecase"
	"github.com/scannercafe/sync-api/internal/domain"
	"github.com/scannercafe/sync-api/internal/domain/entity"
)

// HeaderSyncKey header con el token opaco del workspace.
const HeaderSyncKey = "X-Sync-Key"

// LocalWorkspace key del workspace resuelto en c.Locals.
const LocalWorkspace = "workspace"

// RequireWorkspace valida el header X-Sync-Key, resuelve el workspace dueño y
// lo deja en c.Locals. Es la verificación de capacidad de toda la API: sin
// workspace resuelto ningún handler de catálogo/ventas/reportes se ejecuta.
func RequireWorkspace(uc *usecase.WorkspaceUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ws, err := uc.Resolve(c.UserContext(), c.Get(HeaderSyncKey))
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrMissingSyncKey):
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Code: "MISSING_SYNC_KEY", Message: "header " + HeaderSyncKey + " requerido",
				})
			case errors.Is(err, domain.ErrNotFound):
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
					Code: "INVALID_SYNC_KEY", Message: "sync key inválida; registre el workspace primero",
				})
			default:
				return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
					Code: "INTERNAL", Message: err.Error(),
				})
			}
		}
		c.Locals(LocalWorkspace, ws)
		return c.Next()
	}
}

// GetWorkspace devuelve el workspace del contexto (después de RequireWorkspace).
func GetWorkspace(c *fiber.Ctx) *entity.Workspace {
	v := c.Locals(LocalWorkspace)
	if v == nil {
		return nil
	}
	ws, _ := v.(*entity.Workspace)
	return ws
}
