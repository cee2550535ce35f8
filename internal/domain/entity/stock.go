package entity

import "time"

// Estados del ciclo de vida de un stock. La única transición válida es
// pending → in_stock; nunca se revierte.
const (
	StockStatusPending = "pending"
	StockStatusInStock = "in_stock"
)

// Stock representa un lote físico de inventario asignado a una tienda,
// con una fecha programada de ingreso a stock.
type Stock struct {
	ID          int64
	StockNumber string
	ItemCode    string
	ItemName    string
	Quantity    int
	Location    string
	StoreID     int64
	InStockDate time.Time // solo fecha, sin componente horario
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Store referencia resuelta (join de solo lectura), puede ser nil.
	Store *Store
}
