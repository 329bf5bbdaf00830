package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Tesoreria-api/internal/application/auth"
	"github.com/jhoicas/Tesoreria-api/internal/application/dto"
)

// AuthHandler maneja login, logout y perfil.
type AuthHandler struct {
	uc *auth.AuthUseCase
	er *errorReporter
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, er *errorReporter) *AuthHandler {
	return &AuthHandler{uc: uc, er: er}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "company_id, username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      423   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return h.er.respond(c, "auth.login", err)
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión (operación local del cliente, sin blacklist)
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]bool
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.er.log.Info().
		Str("user_id", GetUserID(c)).
		Str("company_id", GetCompanyID(c)).
		Msg("logout")
	return c.JSON(fiber.Map{"success": true})
}

// Me godoc
// @Summary      Perfil del usuario autenticado
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	// AuthMiddleware ya verificó el token; se relee para devolver el perfil completo.
	parts := strings.SplitN(c.Get("Authorization"), " ", 2)
	if len(parts) != 2 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
	}
	profile, err := h.uc.VerifyToken(c.UserContext(), strings.TrimSpace(parts[1]))
	if err != nil {
		return h.er.respond(c, "auth.me", err)
	}
	return c.JSON(profile)
}
