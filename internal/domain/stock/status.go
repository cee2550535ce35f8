package stock

import (
	"time"

	"github.com/jcastro/stockapp-api/internal/domain/entity"
)

// TransitionDue indica si el stock debe pasar a in_stock en la fecha asOf:
// el estado debe ser exactamente pending y la fecha programada debe haber
// llegado (comparación solo por fecha).
func TransitionDue(s *entity.Stock, asOf time.Time) bool {
	if s.Status != entity.StockStatusPending {
		return false
	}
	return !DateOnly(s.InStockDate).After(DateOnly(asOf))
}

// Advance aplica la transición pending → in_stock si corresponde y devuelve
// true si hubo cambio. Sobre un stock ya in_stock es un no-op, no un error.
func Advance(s *entity.Stock, asOf time.Time) bool {
	if !TransitionDue(s, asOf) {
		return false
	}
	s.Status = entity.StockStatusInStock
	return true
}
