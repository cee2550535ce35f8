package http

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jcastro/stockapp-api/internal/application/dto"
	"github.com/jcastro/stockapp-api/internal/domain"
)

// StockQueryService contrato de listado/borrado que consume el handler.
type StockQueryService interface {
	List(in dto.ListStocksRequest) (*dto.StockListResponse, error)
	Delete(id int64) error
}

// BulkIngestService contrato de ingesta por lote que consume el handler.
type BulkIngestService interface {
	IngestBatch(ctx context.Context, in dto.BulkCreateStocksRequest) ([]dto.StockResponse, error)
}

// StockHandler maneja las peticiones HTTP para stocks (protegido).
type StockHandler struct {
	query  StockQueryService
	ingest BulkIngestService
}

// NewStockHandler construye el handler.
func NewStockHandler(query StockQueryService, ingest BulkIngestService) *StockHandler {
	return &StockHandler{query: query, ingest: ingest}
}

// List godoc
// @Summary      Listar stocks con búsqueda, orden y paginación
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "Texto a buscar en item_code, item_name o location"
// @Param        sort      query  string  false  "Campo de orden"  default(id)
// @Param        order     query  string  false  "asc o desc"      default(desc)
// @Param        per_page  query  int     false  "Tamaño de página" default(15)
// @Param        page      query  int     false  "Página (1-indexada)" default(1)
// @Success      200  {object}  dto.StockListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stocks [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	var in dto.ListStocksRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Code: "VALIDATION", Message: "query params inválidos"})
	}
	out, err := h.query.List(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// BulkCreate godoc
// @Summary      Crear stocks por lote (todo-o-nada)
// @Tags         stocks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkCreateStocksRequest  true  "Lote de stocks (mínimo 1)"
// @Success      200   {object}  dto.BulkCreateStocksResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/stocks/bulk [post]
func (h *StockHandler) BulkCreate(c *fiber.Ctx) error {
	var in dto.BulkCreateStocksRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	created, err := h.ingest.IngestBatch(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.BulkCreateStocksResponse{
		Success: true,
		Message: fmt.Sprintf("%d stocks creados exitosamente", len(created)),
		Data:    created,
	})
}

// Delete godoc
// @Summary      Eliminar un stock por ID
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del stock"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stocks/{id} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return respondError(c, fmt.Errorf("%w: id debe ser numérico", domain.ErrValidation))
	}
	if err := h.query.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "stock eliminado exitosamente"})
}
