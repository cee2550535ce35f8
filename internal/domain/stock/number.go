package stock

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Prefijo de los números de stock visibles externamente.
const NumberPrefix = "STK"

// NewStockNumber genera un número de stock: prefijo + timestamp unix + sufijo
// aleatorio de 4 dígitos. No es determinista entre llamadas; la probabilidad
// de colisión dentro del mismo segundo no es cero, por lo que el coordinador
// de ingesta reintenta la generación ante una violación de unicidad.
func NewStockNumber() string {
	return fmt.Sprintf("%s%d%04d", NumberPrefix, time.Now().Unix(), 1000+rand.IntN(9000))
}
