package repository

import "github.com/jcastro/stockapp-api/internal/domain/entity"

// UserRepository puerto de lectura de usuarios (colaborador de auth). El alta
// de usuarios ocurre fuera de este núcleo (seed / administración).
type UserRepository interface {
	GetByEmail(email string) (*entity.User, error)
}
