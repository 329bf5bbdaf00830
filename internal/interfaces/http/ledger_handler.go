package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Tesoreria-api/internal/application/dto"
	"github.com/jhoicas/Tesoreria-api/internal/application/ledger"
)

// LedgerHandler expone el registro diario de operaciones.
type LedgerHandler struct {
	uc *ledger.LedgerUseCase
	er *errorReporter
}

func NewLedgerHandler(uc *ledger.LedgerUseCase, er *errorReporter) *LedgerHandler {
	return &LedgerHandler{uc: uc, er: er}
}

// Upsert godoc
// @Summary      Crear o reemplazar el registro del día
// @Description  Idempotente por (empresa, fecha): si el día ya existe se
// @Description  sobreescribe su contenido y se reasigna el autor.
// @Tags         operations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UpsertLedgerRequest  true  "registro del día"
// @Success      200  {object}  dto.LedgerRecordResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/operations [post]
func (h *LedgerHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertLedgerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Upsert(c.UserContext(), GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		return h.er.respond(c, "operations.upsert", err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar registros diarios
// @Description  Los usuarios con rol "user" solo ven sus propios registros.
// @Tags         operations
// @Produce      json
// @Security     BearerAuth
// @Param        start_date      query  string  false  "YYYY-MM-DD"
// @Param        end_date        query  string  false  "YYYY-MM-DD"
// @Param        author_user_id  query  string  false  "solo admin/manager"
// @Param        limit           query  int     false  "por defecto 20"
// @Param        offset          query  int     false  "por defecto 0"
// @Success      200  {object}  dto.LedgerListResponse
// @Router       /api/operations [get]
func (h *LedgerHandler) List(c *fiber.Ctx) error {
	var in dto.ListLedgerRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(c.UserContext(), GetCompanyID(c), GetUserID(c), GetRole(c), in)
	if err != nil {
		return h.er.respond(c, "operations.list", err)
	}
	return c.JSON(out)
}
