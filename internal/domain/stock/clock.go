package stock

import "time"

// Clock provee la fecha actual. Se inyecta en el motor de ciclo de vida y en la
// reconciliación para que la lógica dependiente del calendario sea determinista
// en tests.
type Clock interface {
	Today() time.Time
}

// SystemClock implementación de Clock sobre el reloj del sistema (UTC).
type SystemClock struct{}

// Today devuelve la fecha actual truncada a medianoche UTC.
func (SystemClock) Today() time.Time {
	return DateOnly(time.Now().UTC())
}

// FixedClock Clock de fecha fija, para tests y para el job de reconciliación
// cuando se le pasa una fecha explícita.
type FixedClock struct {
	Date time.Time
}

// Today devuelve la fecha fija truncada.
func (c FixedClock) Today() time.Time {
	return DateOnly(c.Date)
}

// DateOnly descarta el componente horario de t (comparaciones solo por fecha).
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
