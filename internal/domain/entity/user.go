package entity

import "time"

// User usuario de la aplicación (colaborador externo de autenticación).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
