package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Tesoreria-api/internal/application/dto"
	"github.com/jhoicas/Tesoreria-api/internal/application/ledger"
)

// ReportHandler expone reportes diarios, PDF y agregados mensuales.
type ReportHandler struct {
	uc *ledger.LedgerUseCase
	er *errorReporter
}

func NewReportHandler(uc *ledger.LedgerUseCase, er *errorReporter) *ReportHandler {
	return &ReportHandler{uc: uc, er: er}
}

// Daily godoc
// @Summary      Registro de un día concreto
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        date  path  string  true  "YYYY-MM-DD"
// @Success      200  {object}  dto.LedgerRecordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/daily/{date} [get]
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	out, err := h.uc.DailyReport(c.UserContext(), GetCompanyID(c), c.Params("date"))
	if err != nil {
		return h.er.respond(c, "reports.daily", err)
	}
	return c.JSON(out)
}

// DailyPDF godoc
// @Summary      Registro diario en PDF
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        date  path  string  true  "YYYY-MM-DD"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/daily/{date}/pdf [get]
func (h *ReportHandler) DailyPDF(c *fiber.Ctx) error {
	day := c.Params("date")
	pdf, err := h.uc.DailyReportPDF(c.UserContext(), GetCompanyID(c), day)
	if err != nil {
		return h.er.respond(c, "reports.daily_pdf", err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="journal-%s.pdf"`, day))
	return c.Send(pdf)
}

// Monthly godoc
// @Summary      Agregado mensual de saldos y operaciones
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        year   path  int  true  "año, ej. 2026"
// @Param        month  path  int  true  "mes 1..12"
// @Success      200  {object}  dto.MonthlyAggregateResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/monthly/{year}/{month} [get]
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "año inválido"})
	}
	month, err := strconv.Atoi(c.Params("month"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "mes inválido"})
	}
	out, err := h.uc.MonthlyAggregate(c.UserContext(), GetCompanyID(c), year, month)
	if err != nil {
		return h.er.respond(c, "reports.monthly", err)
	}
	return c.JSON(out)
}
