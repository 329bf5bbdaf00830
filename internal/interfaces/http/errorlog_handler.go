package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Tesoreria-api/internal/application/dto"
	"github.com/jhoicas/Tesoreria-api/internal/application/usecase"
	"github.com/jhoicas/Tesoreria-api/internal/domain/entity"
)

// ErrorLogHandler recibe reportes de error del cliente.
type ErrorLogHandler struct {
	uc *usecase.ErrorLogUseCase
	er *errorReporter
}

func NewErrorLogHandler(uc *usecase.ErrorLogUseCase, er *errorReporter) *ErrorLogHandler {
	return &ErrorLogHandler{uc: uc, er: er}
}

// Report godoc
// @Summary      Registrar un error reportado por el cliente
// @Tags         errors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ReportErrorRequest  true  "detalle del error"
// @Success      201  {object}  map[string]bool
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/errors [post]
func (h *ErrorLogHandler) Report(c *fiber.Ctx) error {
	var in dto.ReportErrorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "message es obligatorio"})
	}
	event := entity.ErrorEvent{
		CompanyID: GetCompanyID(c),
		UserID:    GetUserID(c),
		Message:   in.Message,
		Stack:     in.Stack,
		Context:   in.Context,
		Severity:  in.Severity,
	}
	if err := h.uc.Report(c.UserContext(), event); err != nil {
		return h.er.respond(c, "errors.report", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}
