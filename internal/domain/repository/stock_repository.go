package repository

import (
	"time"

	"github.com/jcastro/stockapp-api/internal/domain/entity"
)

// SearchParams parámetros del contrato de búsqueda/orden/paginación de stocks.
// SortField y SortOrder llegan ya validados por el caso de uso (enumeración
// cerrada); el adaptador los vuelve a mapear a columnas por seguridad.
type SearchParams struct {
	Search    string
	SortField string
	SortOrder string
	Limit     int
	Offset    int
}

// StockRepository define el puerto de persistencia para Stock (DIP).
type StockRepository interface {
	// CreateBatch inserta todos los stocks y completa ID/CreatedAt/UpdatedAt.
	// Se usa dentro de una transacción para que el lote sea todo-o-nada.
	// Devuelve domain.ErrDuplicateStockNumber ante colisión de stock_no.
	CreateBatch(stocks []*entity.Stock) error
	// Search devuelve la página de stocks (con su tienda resuelta) y el total
	// de coincidencias sobre el conjunto filtrado.
	Search(params SearchParams) ([]*entity.Stock, int64, error)
	GetByID(id int64) (*entity.Stock, error)
	Delete(id int64) error
	// MarkInStockByDate pasa a in_stock, en un solo update condicional, todos
	// los stocks pending cuya fecha programada es exactamente date. Devuelve
	// la cantidad de filas transicionadas.
	MarkInStockByDate(date time.Time) (int64, error)
}
