package stock

import (
	"context"

	"github.com/jcastro/stockapp-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de stocks atado a esa tx. Garantiza que la ingesta por lote sea
// atómica: o se persiste todo el lote o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(stockRepo repository.StockRepository) error) error
}
