package stock_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jcastro/stockapp-api/internal/domain"
	"github.com/jcastro/stockapp-api/internal/domain/entity"
	"github.com/jcastro/stockapp-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

// fakeStockRepo implementación en memoria de repository.StockRepository.
type fakeStockRepo struct {
	stocks []*entity.Stock
	nextID int64
}

func (r *fakeStockRepo) CreateBatch(stocks []*entity.Stock) error {
	seen := make(map[string]bool, len(r.stocks))
	for _, s := range r.stocks {
		seen[s.StockNumber] = true
	}
	for _, s := range stocks {
		if seen[s.StockNumber] {
			return domain.ErrDuplicateStockNumber
		}
		seen[s.StockNumber] = true
	}
	for _, s := range stocks {
		r.nextID++
		s.ID = r.nextID
		cp := *s
		r.stocks = append(r.stocks, &cp)
	}
	return nil
}

func (r *fakeStockRepo) Search(params repository.SearchParams) ([]*entity.Stock, int64, error) {
	var matched []*entity.Stock
	term := strings.ToLower(params.Search)
	for _, s := range r.stocks {
		if term == "" ||
			strings.Contains(strings.ToLower(s.ItemCode), term) ||
			strings.Contains(strings.ToLower(s.ItemName), term) ||
			strings.Contains(strings.ToLower(s.Location), term) {
			matched = append(matched, s)
		}
	}

	// El fake solo ordena por id e item_code, suficiente para los tests.
	sort.SliceStable(matched, func(i, j int) bool {
		var less bool
		switch params.SortField {
		case "item_code":
			less = matched[i].ItemCode < matched[j].ItemCode
		default:
			less = matched[i].ID < matched[j].ID
		}
		if params.SortOrder == "desc" {
			return !less
		}
		return less
	})

	total := int64(len(matched))
	start := params.Offset
	if start > len(matched) {
		start = len(matched)
	}
	end := start + params.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *fakeStockRepo) GetByID(id int64) (*entity.Stock, error) {
	for _, s := range r.stocks {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeStockRepo) Delete(id int64) error {
	for i, s := range r.stocks {
		if s.ID == id {
			r.stocks = append(r.stocks[:i], r.stocks[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeStockRepo) MarkInStockByDate(date time.Time) (int64, error) {
	var count int64
	for _, s := range r.stocks {
		if s.Status == entity.StockStatusPending && s.InStockDate.Equal(date) {
			s.Status = entity.StockStatusInStock
			count++
		}
	}
	return count, nil
}

// fakeTxRunner simula la transacción restaurando el estado del repo si el
// callback falla; failures fuerza colisiones de stock_no para probar el
// reintento de generación.
type fakeTxRunner struct {
	repo     *fakeStockRepo
	failures int
	attempts int
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(repository.StockRepository) error) error {
	t.attempts++
	if t.failures > 0 {
		t.failures--
		return domain.ErrDuplicateStockNumber
	}
	snapshot := append([]*entity.Stock(nil), t.repo.stocks...)
	if err := fn(t.repo); err != nil {
		t.repo.stocks = snapshot
		return err
	}
	return nil
}

// fakeStoreRepo directorio de tiendas en memoria.
type fakeStoreRepo struct {
	stores map[int64]*entity.Store
}

func newFakeStoreRepo(stores ...*entity.Store) *fakeStoreRepo {
	m := make(map[int64]*entity.Store, len(stores))
	for _, s := range stores {
		m[s.ID] = s
	}
	return &fakeStoreRepo{stores: m}
}

func (r *fakeStoreRepo) ListActive() ([]*entity.Store, error) {
	var list []*entity.Store
	for _, s := range r.stores {
		if s.IsActive {
			list = append(list, s)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *fakeStoreRepo) GetByID(id int64) (*entity.Store, error) {
	return r.stores[id], nil
}
