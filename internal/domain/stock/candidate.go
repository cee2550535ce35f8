package stock

import (
	"fmt"
	"time"

	"github.com/jcastro/stockapp-api/internal/domain"
	"github.com/jcastro/stockapp-api/internal/domain/entity"
)

// CandidateInput campos de entrada para construir un stock candidato.
type CandidateInput struct {
	ItemCode    string
	ItemName    string
	Quantity    int
	Location    string
	InStockDate time.Time
}

// NewCandidate valida la entrada y construye un Stock listo para persistir:
// estado inicial pending y número de stock recién generado. La tienda debe
// existir y estar activa (validación explícita contra el directorio de
// tiendas, no como efecto colateral de un constraint de BD).
func NewCandidate(in CandidateInput, store *entity.Store, now time.Time) (*entity.Stock, error) {
	if in.ItemCode == "" {
		return nil, fmt.Errorf("%w: item_code es requerido", domain.ErrValidation)
	}
	if in.ItemName == "" {
		return nil, fmt.Errorf("%w: item_name es requerido", domain.ErrValidation)
	}
	if in.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity debe ser mayor o igual a 1", domain.ErrValidation)
	}
	if in.Location == "" {
		return nil, fmt.Errorf("%w: location es requerido", domain.ErrValidation)
	}
	if in.InStockDate.IsZero() {
		return nil, fmt.Errorf("%w: in_stock_date es requerido", domain.ErrValidation)
	}
	if store == nil {
		return nil, fmt.Errorf("%w: store_id no referencia una tienda existente", domain.ErrValidation)
	}
	if !store.IsActive {
		return nil, fmt.Errorf("%w: la tienda %d no está activa", domain.ErrValidation, store.ID)
	}

	return &entity.Stock{
		StockNumber: NewStockNumber(),
		ItemCode:    in.ItemCode,
		ItemName:    in.ItemName,
		Quantity:    in.Quantity,
		Location:    in.Location,
		StoreID:     store.ID,
		InStockDate: DateOnly(in.InStockDate),
		Status:      entity.StockStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
		Store:       store,
	}, nil
}

// RegenerateNumber asigna un número de stock nuevo (reintento tras colisión).
func RegenerateNumber(s *entity.Stock) {
	s.StockNumber = NewStockNumber()
}
