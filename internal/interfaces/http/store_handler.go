package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jcastro/stockapp-api/internal/application/dto"
)

// StoreDirectoryService contrato del directorio de tiendas que consume el handler.
type StoreDirectoryService interface {
	ListActive() (*dto.StoreListResponse, error)
}

// StoreHandler maneja las peticiones HTTP para tiendas (protegido, solo lectura).
type StoreHandler struct {
	stores StoreDirectoryService
}

// NewStoreHandler construye el handler.
func NewStoreHandler(stores StoreDirectoryService) *StoreHandler {
	return &StoreHandler{stores: stores}
}

// List godoc
// @Summary      Listar tiendas activas
// @Tags         stores
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StoreListResponse
// @Router       /api/stores [get]
func (h *StoreHandler) List(c *fiber.Ctx) error {
	out, err := h.stores.ListActive()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
