package dto

// StoreResponse proyección pública de una tienda (id, nombre, ubicación).
type StoreResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// StoreListResponse lista de tiendas activas.
type StoreListResponse struct {
	Success bool            `json:"success"`
	Data    []StoreResponse `json:"data"`
}
