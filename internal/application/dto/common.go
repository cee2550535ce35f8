package dto

// MessageResponse respuesta genérica con indicador de éxito y mensaje legible.
// Toda respuesta de la API lleva el booleano success; las operaciones por lote
// nunca reportan éxito parcial.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// Pagination metadatos de paginación calculados sobre el conjunto filtrado.
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
}
