package stock

import (
	"fmt"
	"strings"

	"github.com/jcastro/stockapp-api/internal/application/dto"
	"github.com/jcastro/stockapp-api/internal/domain"
	"github.com/jcastro/stockapp-api/internal/domain/repository"
)

// Valores por defecto del contrato de listado.
const (
	defaultSortField = "id"
	defaultSortOrder = "desc"
	defaultPerPage   = 15
	maxPerPage       = 100
)

// Enumeración cerrada de campos ordenables: la entrada del caller nunca llega
// sin validar a la construcción de la consulta.
var sortableFields = map[string]bool{
	"id":            true,
	"stock_no":      true,
	"item_code":     true,
	"item_name":     true,
	"quantity":      true,
	"location":      true,
	"store_id":      true,
	"in_stock_date": true,
	"status":        true,
	"created_at":    true,
	"updated_at":    true,
}

// QueryUseCase servicio de consulta de stocks: búsqueda, orden, paginación y
// borrado individual.
type QueryUseCase struct {
	stockRepo repository.StockRepository
}

// NewQueryUseCase construye el servicio de consulta.
func NewQueryUseCase(stockRepo repository.StockRepository) *QueryUseCase {
	return &QueryUseCase{stockRepo: stockRepo}
}

// List ejecuta el contrato de listado: filtro de texto libre (substring, sin
// distinguir mayúsculas, sobre item_code/item_name/location), orden por campo
// permitido y paginación 1-indexada con metadatos sobre el conjunto filtrado.
func (uc *QueryUseCase) List(in dto.ListStocksRequest) (*dto.StockListResponse, error) {
	sortField := in.Sort
	if sortField == "" {
		sortField = defaultSortField
	}
	if !sortableFields[sortField] {
		return nil, fmt.Errorf("%w: campo de orden desconocido: %q", domain.ErrValidation, in.Sort)
	}
	sortOrder := strings.ToLower(in.Order)
	if sortOrder == "" {
		sortOrder = defaultSortOrder
	}
	if sortOrder != "asc" && sortOrder != "desc" {
		return nil, fmt.Errorf("%w: order debe ser asc o desc", domain.ErrValidation)
	}

	perPage := in.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	page := in.Page
	if page < 1 {
		page = 1
	}

	items, total, err := uc.stockRepo.Search(repository.SearchParams{
		Search:    in.Search,
		SortField: sortField,
		SortOrder: sortOrder,
		Limit:     perPage,
		Offset:    (page - 1) * perPage,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: buscar stocks: %v", domain.ErrPersistence, err)
	}

	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	data := make([]dto.StockResponse, 0, len(items))
	for _, s := range items {
		data = append(data, toStockResponse(s))
	}
	return &dto.StockListResponse{
		Success: true,
		Data:    data,
		Pagination: dto.Pagination{
			CurrentPage: page,
			LastPage:    lastPage,
			PerPage:     perPage,
			Total:       total,
		},
	}, nil
}

// Delete elimina un stock por ID. Si no existe devuelve domain.ErrNotFound sin
// afectar ningún otro registro.
func (uc *QueryUseCase) Delete(id int64) error {
	existing, err := uc.stockRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("%w: consultar stock %d: %v", domain.ErrPersistence, id, err)
	}
	if existing == nil {
		return fmt.Errorf("%w: stock %d", domain.ErrNotFound, id)
	}
	if err := uc.stockRepo.Delete(id); err != nil {
		return fmt.Errorf("%w: eliminar stock %d: %v", domain.ErrPersistence, id, err)
	}
	return nil
}
