package stock

import (
	"fmt"
	"time"

	"github.com/jcastro/stockapp-api/internal/domain"
	"github.com/jcastro/stockapp-api/internal/domain/repository"
	domainstock "github.com/jcastro/stockapp-api/internal/domain/stock"
)

// ReconcileUseCase proceso de reconciliación programada: avanza a in_stock los
// stocks pending cuya fecha programada llegó, en un solo update condicional.
type ReconcileUseCase struct {
	stockRepo repository.StockRepository
	clock     domainstock.Clock
}

// NewReconcileUseCase construye el caso de uso.
func NewReconcileUseCase(stockRepo repository.StockRepository, clock domainstock.Clock) *ReconcileUseCase {
	return &ReconcileUseCase{stockRepo: stockRepo, clock: clock}
}

// Reconcile transiciona los stocks pending con in_stock_date igual a asOf y
// devuelve cuántos cambiaron; cero es un resultado válido. Si asOf es la hora
// cero se usa la fecha del reloj inyectado. Es idempotente: una segunda
// corrida para la misma fecha no afecta filas.
//
// La coincidencia es por fecha exacta (comportamiento de referencia): una
// corrida perdida se resuelve reinvocando con la fecha omitida.
func (uc *ReconcileUseCase) Reconcile(asOf time.Time) (int64, error) {
	if asOf.IsZero() {
		asOf = uc.clock.Today()
	}
	count, err := uc.stockRepo.MarkInStockByDate(domainstock.DateOnly(asOf))
	if err != nil {
		return 0, fmt.Errorf("%w: reconciliar stocks: %v", domain.ErrPersistence, err)
	}
	return count, nil
}
