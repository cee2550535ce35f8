package dto

import "time"

// StockEntryRequest una entrada candidata del lote de ingesta.
type StockEntryRequest struct {
	ItemCode    string `json:"item_code"`
	ItemName    string `json:"item_name"`
	Quantity    int    `json:"quantity"`
	Location    string `json:"location"`
	StoreID     int64  `json:"store_id"`
	InStockDate string `json:"in_stock_date"` // formato YYYY-MM-DD
}

// BulkCreateStocksRequest cuerpo de POST /api/stocks/bulk (mínimo 1 entrada).
type BulkCreateStocksRequest struct {
	Stocks []StockEntryRequest `json:"stocks"`
}

// ListStocksRequest query params de GET /api/stocks.
type ListStocksRequest struct {
	Search  string `query:"search"`
	Sort    string `query:"sort"`
	Order   string `query:"order"`
	PerPage int    `query:"per_page"`
	Page    int    `query:"page"`
}

// StockResponse salida de un stock con su tienda resuelta.
type StockResponse struct {
	ID          int64          `json:"id"`
	StockNo     string         `json:"stock_no"`
	ItemCode    string         `json:"item_code"`
	ItemName    string         `json:"item_name"`
	Quantity    int            `json:"quantity"`
	Location    string         `json:"location"`
	StoreID     int64          `json:"store_id"`
	InStockDate string         `json:"in_stock_date"` // YYYY-MM-DD
	Status      string         `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Store       *StoreResponse `json:"store,omitempty"`
}

// StockListResponse lista paginada de stocks.
type StockListResponse struct {
	Success    bool            `json:"success"`
	Data       []StockResponse `json:"data"`
	Pagination Pagination      `json:"pagination"`
}

// BulkCreateStocksResponse respuesta de la ingesta por lote.
type BulkCreateStocksResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    []StockResponse `json:"data"`
}
