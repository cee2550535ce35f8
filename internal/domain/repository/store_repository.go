package repository

import "github.com/jcastro/stockapp-api/internal/domain/entity"

// StoreRepository puerto de lectura del directorio de tiendas. Este núcleo
// solo lo consume para listar tiendas activas y validar store_id en la ingesta.
type StoreRepository interface {
	ListActive() ([]*entity.Store, error)
	GetByID(id int64) (*entity.Store, error)
}
