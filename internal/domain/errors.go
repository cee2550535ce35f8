package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrValidation           = errors.New("entrada inválida")
	ErrPersistence          = errors.New("fallo de persistencia")
	ErrDuplicateStockNumber = errors.New("número de stock duplicado")
	ErrUnauthorized         = errors.New("no autorizado")
)
