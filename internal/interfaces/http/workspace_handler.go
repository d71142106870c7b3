package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/scannercafe/sync-api/internal/application/dto"
	"github.com/scannercafe/sync-api/internal/application/usecase"
	"github.com/scannercafe/sync-api/internal/domain"
)

// WorkspaceHandler maneja registro e identidad de workspaces.
type WorkspaceHandler struct {
	uc *usecase.WorkspaceUseCase
}

// NewWorkspaceHandler construye el handler.
func NewWorkspaceHandler(uc *usecase.WorkspaceUseCase) *WorkspaceHandler {
	return &WorkspaceHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar o validar workspace
// @Tags         workspaces
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterWorkspaceRequest  true  "Negocio y sync key"
// @Success      200   {object}  dto.RegisterWorkspaceResponse
// @Success      201   {object}  dto.RegisterWorkspaceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/workspaces/register [post]
func (h *WorkspaceHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterWorkspaceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "businessName y syncKey son requeridos"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "KEY_TAKEN", Message: "la sync key ya está registrada bajo otro negocio"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	status := fiber.StatusOK
	if out.Created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(out)
}

// Info godoc
// @Summary      Identidad del workspace resuelto
// @Tags         workspaces
// @Produce      json
// @Param        X-Sync-Key  header  string  true  "Sync key del workspace"
// @Success      200  {object}  dto.WorkspaceInfoResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/workspaces/info [get]
func (h *WorkspaceHandler) Info(c *fiber.Ctx) error {
	ws := GetWorkspace(c)
	return c.JSON(dto.WorkspaceInfoResponse{
		Business:  ws.Business,
		SyncKey:   ws.SyncKey,
		CreatedAt: ws.CreatedAt,
	})
}
