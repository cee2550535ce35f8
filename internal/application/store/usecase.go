package store

import (
	"fmt"

	"github.com/jcastro/stockapp-api/internal/application/dto"
	"github.com/jcastro/stockapp-api/internal/domain"
	"github.com/jcastro/stockapp-api/internal/domain/repository"
)

// UseCase lectura del directorio de tiendas.
type UseCase struct {
	repo repository.StoreRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.StoreRepository) *UseCase {
	return &UseCase{repo: repo}
}

// ListActive devuelve las tiendas activas con la proyección pública
// (id, nombre, ubicación).
func (uc *UseCase) ListActive() (*dto.StoreListResponse, error) {
	stores, err := uc.repo.ListActive()
	if err != nil {
		return nil, fmt.Errorf("%w: listar tiendas: %v", domain.ErrPersistence, err)
	}
	data := make([]dto.StoreResponse, 0, len(stores))
	for _, s := range stores {
		data = append(data, dto.StoreResponse{ID: s.ID, Name: s.Name, Location: s.Location})
	}
	return &dto.StoreListResponse{Success: true, Data: data}, nil
}
