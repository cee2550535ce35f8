package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jcastro/stockapp-api/internal/application/dto"
	"github.com/jcastro/stockapp-api/internal/domain"
)

// AuthService contrato del colaborador de autenticación.
type AuthService interface {
	Login(in dto.LoginRequest) (*dto.LoginResponse, error)
}

// AuthHandler maneja el login (público).
type AuthHandler struct {
	auth AuthService
}

// NewAuthHandler construye el handler.
func NewAuthHandler(auth AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login godoc
// @Summary      Iniciar sesión y obtener bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.auth.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Success: false, Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		return respondError(c, err)
	}
	return c.JSON(out)
}
