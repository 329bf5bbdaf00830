package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Tesoreria-api/internal/application/dto"
	"github.com/jhoicas/Tesoreria-api/internal/application/usecase"
	"github.com/jhoicas/Tesoreria-api/internal/domain"
	"github.com/jhoicas/Tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/Tesoreria-api/pkg/logger"
)

// domainStatus mapeo error de dominio -> (status HTTP, código estable).
// Los mensajes son los del dominio; nunca detalle interno.
func domainStatus(err error) (int, string) {
	switch err {
	case domain.ErrValidation:
		return fiber.StatusBadRequest, "VALIDATION"
	case domain.ErrInvalidCredentials:
		return fiber.StatusUnauthorized, "INVALID_CREDENTIALS"
	case domain.ErrAccountLocked:
		return fiber.StatusLocked, "ACCOUNT_LOCKED"
	case domain.ErrInvalidToken:
		return fiber.StatusUnauthorized, "INVALID_TOKEN"
	case domain.ErrForbidden:
		return fiber.StatusForbidden, "FORBIDDEN"
	case domain.ErrLastAdmin:
		return fiber.StatusBadRequest, "LAST_ADMIN"
	case domain.ErrDuplicateUsername:
		return fiber.StatusConflict, "USERNAME_EXISTS"
	case domain.ErrNotFound:
		return fiber.StatusNotFound, "NOT_FOUND"
	case domain.ErrDuplicate, domain.ErrConflict:
		return fiber.StatusConflict, "CONFLICT"
	}
	return 0, ""
}

// errorReporter responde errores de dominio y reporta los inesperados al
// sumidero de auditoría antes de devolver un 500 genérico.
type errorReporter struct {
	log  *logger.Logger
	sink *usecase.ErrorLogUseCase
}

func newErrorReporter(log *logger.Logger, sink *usecase.ErrorLogUseCase) *errorReporter {
	return &errorReporter{log: log, sink: sink}
}

// respond mapea el error al status correspondiente. op es el nombre de la
// operación, para el log estructurado y el evento de auditoría.
func (er *errorReporter) respond(c *fiber.Ctx, op string, err error) error {
	if status, code := domainStatus(err); status != 0 {
		return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
	}

	er.log.Error().Err(err).
		Str("operation", op).
		Str("company_id", GetCompanyID(c)).
		Str("user_id", GetUserID(c)).
		Msg("error inesperado")

	if sinkErr := er.sink.Report(c.UserContext(), entity.ErrorEvent{
		CompanyID: GetCompanyID(c),
		UserID:    GetUserID(c),
		Message:   err.Error(),
		Context:   op,
		Severity:  entity.SeverityHigh,
	}); sinkErr != nil {
		er.log.Error().Err(sinkErr).Str("operation", op).Msg("no se pudo persistir el evento de error")
	}

	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
}
