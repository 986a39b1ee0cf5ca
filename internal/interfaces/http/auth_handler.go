package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/contable-pro/internal/application/auth"
	"github.com/tu-usuario/contable-pro/internal/application/dto"
)

// AuthHandler maneja la puerta de acceso.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Abrir sesión con la contraseña única
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.LoginResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	token, err := h.uc.Entrar(in.Password)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.LoginResponse{Token: token})
}
