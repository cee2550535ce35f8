package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jcastro/stockapp-api/internal/application/dto"
	"github.com/jcastro/stockapp-api/internal/domain"
)

// respondError mapea la taxonomía de errores de dominio a códigos HTTP:
// validación → 400, no encontrado → 404, no autorizado → 401, persistencia y
// resto → 500. Toda respuesta de error lleva success:false y mensaje legible.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	code := "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrValidation):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrUnauthorized):
		status, code = fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrPersistence):
		code = "PERSISTENCE"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Success: false, Code: code, Message: err.Error()})
}
