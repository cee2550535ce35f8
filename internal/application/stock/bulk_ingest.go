package stock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jcastro/stockapp-api/internal/application/dto"
	"github.com/jcastro/stockapp-api/internal/domain"
	"github.com/jcastro/stockapp-api/internal/domain/entity"
	"github.com/jcastro/stockapp-api/internal/domain/repository"
	domainstock "github.com/jcastro/stockapp-api/internal/domain/stock"
)

// Intentos de generación de número de stock ante colisión de unicidad.
const maxNumberAttempts = 3

// BulkIngestUseCase coordina la ingesta por lote: valida cada entrada contra
// el motor de ciclo de vida y el directorio de tiendas antes de escribir, y
// confirma el lote completo en una sola transacción (todo-o-nada).
type BulkIngestUseCase struct {
	txRunner  TxRunner
	storeRepo repository.StoreRepository
}

// NewBulkIngestUseCase construye el coordinador.
func NewBulkIngestUseCase(txRunner TxRunner, storeRepo repository.StoreRepository) *BulkIngestUseCase {
	return &BulkIngestUseCase{txRunner: txRunner, storeRepo: storeRepo}
}

// IngestBatch valida y persiste el lote. Si cualquier entrada es inválida se
// rechaza el lote completo sin escribir nada. Ante una colisión de stock_no
// durante el commit se regeneran los números y se reintenta (acotado); otros
// fallos de persistencia revierten el lote y se reportan como un único error.
func (uc *BulkIngestUseCase) IngestBatch(ctx context.Context, in dto.BulkCreateStocksRequest) ([]dto.StockResponse, error) {
	if len(in.Stocks) == 0 {
		return nil, fmt.Errorf("%w: stocks debe contener al menos una entrada", domain.ErrValidation)
	}

	now := time.Now().UTC()
	stores := make(map[int64]*entity.Store)
	records := make([]*entity.Stock, 0, len(in.Stocks))

	for i, entry := range in.Stocks {
		inStockDate, err := time.Parse(time.DateOnly, entry.InStockDate)
		if err != nil {
			return nil, fmt.Errorf("%w: stocks[%d].in_stock_date debe ser una fecha YYYY-MM-DD", domain.ErrValidation, i)
		}
		store, err := uc.lookupStore(stores, entry.StoreID)
		if err != nil {
			return nil, err
		}
		record, err := domainstock.NewCandidate(domainstock.CandidateInput{
			ItemCode:    entry.ItemCode,
			ItemName:    entry.ItemName,
			Quantity:    entry.Quantity,
			Location:    entry.Location,
			InStockDate: inStockDate,
		}, store, now)
		if err != nil {
			return nil, fmt.Errorf("stocks[%d]: %w", i, err)
		}
		records = append(records, record)
	}

	if err := uc.commitBatch(ctx, records); err != nil {
		return nil, err
	}

	out := make([]dto.StockResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toStockResponse(r))
	}
	return out, nil
}

// commitBatch confirma el lote en una transacción, regenerando los números de
// stock y reintentando ante una violación de unicidad sobre stock_no.
func (uc *BulkIngestUseCase) commitBatch(ctx context.Context, records []*entity.Stock) error {
	var err error
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		if attempt > 0 {
			for _, r := range records {
				domainstock.RegenerateNumber(r)
			}
		}
		err = uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository) error {
			return stockRepo.CreateBatch(records)
		})
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrDuplicateStockNumber) {
			break
		}
	}
	return fmt.Errorf("%w: confirmar lote de stocks: %v", domain.ErrPersistence, err)
}

// lookupStore resuelve la tienda con caché por lote; la inexistencia se
// reporta como error de validación, no como fallo genérico de persistencia.
func (uc *BulkIngestUseCase) lookupStore(cache map[int64]*entity.Store, id int64) (*entity.Store, error) {
	if store, ok := cache[id]; ok {
		return store, nil
	}
	store, err := uc.storeRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: consultar tienda %d: %v", domain.ErrPersistence, id, err)
	}
	if store == nil {
		return nil, fmt.Errorf("%w: store_id %d no referencia una tienda existente", domain.ErrValidation, id)
	}
	cache[id] = store
	return store, nil
}
