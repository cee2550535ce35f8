package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jcastro/stockapp-api/internal/domain"
	"github.com/jcastro/stockapp-api/internal/domain/entity"
	"github.com/jcastro/stockapp-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación del puerto StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stocks. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `s.id, s.stock_no, s.item_code, s.item_name, s.quantity, s.location,
		s.store_id, s.in_stock_date, s.status, s.created_at, s.updated_at,
		st.id, st.name, st.location, st.is_active`

// CreateBatch inserta todos los stocks del lote y completa sus IDs. Debe
// invocarse con un Querier transaccional para que el lote sea todo-o-nada.
func (r *StockRepo) CreateBatch(stocks []*entity.Stock) error {
	query := `
		INSERT INTO stocks (stock_no, item_code, item_name, quantity, location, store_id, in_stock_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	for _, s := range stocks {
		err := r.q.QueryRow(context.Background(), query,
			s.StockNumber, s.ItemCode, s.ItemName, s.Quantity, s.Location,
			s.StoreID, s.InStockDate, s.Status, s.CreatedAt, s.UpdatedAt,
		).Scan(&s.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: %s", domain.ErrDuplicateStockNumber, s.StockNumber)
			}
			return fmt.Errorf("insert stock: %w", err)
		}
	}
	return nil
}

// Search ejecuta el contrato de búsqueda/orden/paginación con la tienda
// resuelta (join de solo lectura) y el total sobre el conjunto filtrado.
func (r *StockRepo) Search(params repository.SearchParams) ([]*entity.Stock, int64, error) {
	var (
		where string
		args  []any
	)
	if params.Search != "" {
		where = ` WHERE (s.item_code ILIKE $1 OR s.item_name ILIKE $1 OR s.location ILIKE $1)`
		args = append(args, "%"+params.Search+"%")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM stocks s` + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stocks: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT `+stockColumns+`
		FROM stocks s
		JOIN stores st ON st.id = s.store_id
		%s
		ORDER BY s.%s %s
		LIMIT $%d OFFSET $%d`,
		where, sortColumn(params.SortField), sortDirection(params.SortOrder),
		len(args)+1, len(args)+2,
	)
	args = append(args, params.Limit, params.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("search stocks: %w", err)
	}
	defer rows.Close()

	var list []*entity.Stock
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, s)
	}
	return list, total, rows.Err()
}

// GetByID obtiene un stock por ID con su tienda resuelta. Devuelve nil, nil si no existe.
func (r *StockRepo) GetByID(id int64) (*entity.Stock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stocks s
		JOIN stores st ON st.id = s.store_id
		WHERE s.id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	s, err := scanStock(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return s, nil
}

// Delete elimina un stock por ID.
func (r *StockRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stocks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	return nil
}

// MarkInStockByDate pasa a in_stock todos los stocks pending con fecha
// programada exactamente igual a date, en un solo update condicional (sin
// bucle leer-luego-escribir, para evitar lost updates concurrentes).
func (r *StockRepo) MarkInStockByDate(date time.Time) (int64, error) {
	cmd, err := r.q.Exec(context.Background(), `
		UPDATE stocks
		SET status = $1, updated_at = now()
		WHERE status = $2 AND in_stock_date = $3`,
		entity.StockStatusInStock, entity.StockStatusPending, date,
	)
	if err != nil {
		return 0, fmt.Errorf("mark stocks in_stock: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// scanStock lee una fila de stock con su tienda (mismo orden que stockColumns).
func scanStock(row pgx.Row) (*entity.Stock, error) {
	var (
		s  entity.Stock
		st entity.Store
	)
	err := row.Scan(
		&s.ID, &s.StockNumber, &s.ItemCode, &s.ItemName, &s.Quantity, &s.Location,
		&s.StoreID, &s.InStockDate, &s.Status, &s.CreatedAt, &s.UpdatedAt,
		&st.ID, &st.Name, &st.Location, &st.IsActive,
	)
	if err != nil {
		return nil, err
	}
	s.Store = &st
	return &s, nil
}

// sortColumn mapea el campo de orden a la columna real; cualquier valor fuera
// de la enumeración cae en id. El caso de uso ya validó la entrada, este
// switch evita que un identificador crudo llegue al ORDER BY.
func sortColumn(field string) string {
	switch field {
	case "id", "stock_no", "item_code", "item_name", "quantity", "location",
		"store_id", "in_stock_date", "status", "created_at", "updated_at":
		return field
	default:
		return "id"
	}
}

func sortDirection(order string) string {
	if strings.EqualFold(order, "asc") {
		return "ASC"
	}
	return "DESC"
}
