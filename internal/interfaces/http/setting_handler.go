package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Tesoreria-api/internal/application/dto"
	"github.com/jhoicas/Tesoreria-api/internal/application/usecase"
)

// SettingHandler maneja la configuración de la empresa.
type SettingHandler struct {
	uc *usecase.SettingUseCase
	er *errorReporter
}

func NewSettingHandler(uc *usecase.SettingUseCase, er *errorReporter) *SettingHandler {
	return &SettingHandler{uc: uc, er: er}
}

// Get godoc
// @Summary      Configuración de la empresa
// @Description  Si la empresa aún no tiene configuración se devuelven los
// @Description  valores por defecto sin persistirlos.
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.SettingResponse
// @Router       /api/settings [get]
func (h *SettingHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return h.er.respond(c, "settings.get", err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar configuración de la empresa
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UpdateSettingRequest  true  "campos a modificar"
// @Success      200  {object}  dto.SettingResponse
// @Router       /api/settings [put]
func (h *SettingHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSettingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return h.er.respond(c, "settings.update", err)
	}
	return c.JSON(out)
}
