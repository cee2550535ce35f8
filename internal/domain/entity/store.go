package entity

import "time"

// Store representa una tienda física que posee cero o más stocks.
// Para este núcleo es un dato de referencia de solo lectura.
type Store struct {
	ID        int64
	Name      string
	Location  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
