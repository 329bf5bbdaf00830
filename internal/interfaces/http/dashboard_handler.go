package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Tesoreria-api/internal/application/usecase"
)

// DashboardHandler expone estadísticas agregadas de la empresa.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
	er *errorReporter
}

func NewDashboardHandler(uc *usecase.DashboardUseCase, er *errorReporter) *DashboardHandler {
	return &DashboardHandler{uc: uc, er: er}
}

// Stats godoc
// @Summary      Estadísticas del panel de control
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DashboardStatsResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return h.er.respond(c, "dashboard.stats", err)
	}
	return c.JSON(out)
}
