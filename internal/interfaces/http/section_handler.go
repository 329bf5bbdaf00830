package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Tesoreria-api/internal/application/dto"
	"github.com/jhoicas/Tesoreria-api/internal/application/usecase"
)

// SectionHandler maneja el catálogo de secciones por categoría.
type SectionHandler struct {
	uc *usecase.SectionUseCase
	er *errorReporter
}

func NewSectionHandler(uc *usecase.SectionUseCase, er *errorReporter) *SectionHandler {
	return &SectionHandler{uc: uc, er: er}
}

// Get godoc
// @Summary      Secciones activas agrupadas por categoría
// @Tags         sections
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.SectionsResponse
// @Router       /api/sections [get]
func (h *SectionHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return h.er.respond(c, "sections.get", err)
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Añadir un ítem al catálogo de una categoría
// @Tags         sections
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        category  path  string                    true  "cash | reserve_fund | guarantee"
// @Param        body      body  dto.AddSectionItemRequest true  "ítem"
// @Success      201  {object}  entity.SectionItem
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sections/{category}/items [post]
func (h *SectionHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddSectionItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddItem(c.UserContext(), GetCompanyID(c), c.Params("category"), in)
	if err != nil {
		return h.er.respond(c, "sections.add_item", err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
