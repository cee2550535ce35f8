package stock_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/stockapp-api/internal/domain"
	"github.com/jcastro/stockapp-api/internal/domain/entity"
	"github.com/jcastro/stockapp-api/internal/domain/stock"
)

var (
	testToday = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	testStore = &entity.Store{ID: 1, Name: "Main Warehouse", Location: "Surat", IsActive: true}
)

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados
// ──────────────────────────────────────────────────────────────────────────────

func TestAdvance_PendingConFechaLlegada_Transiciona(t *testing.T) {
	s := &entity.Stock{Status: entity.StockStatusPending, InStockDate: testToday}

	changed := stock.Advance(s, testToday)

	assert.True(t, changed, "pending con fecha llegada debe transicionar")
	assert.Equal(t, entity.StockStatusInStock, s.Status)
}

func TestAdvance_FechaPasada_Transiciona(t *testing.T) {
	s := &entity.Stock{Status: entity.StockStatusPending, InStockDate: testToday.AddDate(0, 0, -3)}

	assert.True(t, stock.Advance(s, testToday))
	assert.Equal(t, entity.StockStatusInStock, s.Status)
}

func TestAdvance_FechaFutura_NoTransiciona(t *testing.T) {
	s := &entity.Stock{Status: entity.StockStatusPending, InStockDate: testToday.AddDate(0, 0, 1)}

	assert.False(t, stock.Advance(s, testToday), "fecha futura no debe transicionar")
	assert.Equal(t, entity.StockStatusPending, s.Status)
}

func TestAdvance_YaInStock_EsNoOp(t *testing.T) {
	s := &entity.Stock{Status: entity.StockStatusInStock, InStockDate: testToday}

	assert.False(t, stock.Advance(s, testToday), "re-aplicar la transición debe ser no-op, no error")
	assert.Equal(t, entity.StockStatusInStock, s.Status)
}

func TestAdvance_IgnoraComponenteHorario(t *testing.T) {
	// La comparación es solo por fecha: las 23:59 de hoy sigue siendo hoy.
	s := &entity.Stock{
		Status:      entity.StockStatusPending,
		InStockDate: time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC),
	}
	asOf := time.Date(2024, 6, 1, 0, 1, 0, 0, time.UTC)

	assert.True(t, stock.Advance(s, asOf))
}

// ──────────────────────────────────────────────────────────────────────────────
// Construcción de candidatos
// ──────────────────────────────────────────────────────────────────────────────

func validInput() stock.CandidateInput {
	return stock.CandidateInput{
		ItemCode:    "A1",
		ItemName:    "Widget",
		Quantity:    5,
		Location:    "Aisle1",
		InStockDate: testToday,
	}
}

func TestNewCandidate_EntradaValida(t *testing.T) {
	s, err := stock.NewCandidate(validInput(), testStore, testToday)
	require.NoError(t, err)

	assert.Equal(t, entity.StockStatusPending, s.Status, "todo candidato inicia pending")
	assert.NotEmpty(t, s.StockNumber)
	assert.Equal(t, testStore.ID, s.StoreID)
	assert.Equal(t, testStore, s.Store, "la tienda resuelta viaja con el candidato")
	assert.Equal(t, testToday, s.InStockDate)
}

func TestNewCandidate_EntradasInvalidas(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*stock.CandidateInput)
	}{
		{"item_code vacío", func(in *stock.CandidateInput) { in.ItemCode = "" }},
		{"item_name vacío", func(in *stock.CandidateInput) { in.ItemName = "" }},
		{"quantity cero", func(in *stock.CandidateInput) { in.Quantity = 0 }},
		{"quantity negativa", func(in *stock.CandidateInput) { in.Quantity = -4 }},
		{"location vacía", func(in *stock.CandidateInput) { in.Location = "" }},
		{"fecha cero", func(in *stock.CandidateInput) { in.InStockDate = time.Time{} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			_, err := stock.NewCandidate(in, testStore, testToday)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestNewCandidate_TiendaInexistente(t *testing.T) {
	_, err := stock.NewCandidate(validInput(), nil, testToday)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNewCandidate_TiendaInactiva(t *testing.T) {
	inactive := &entity.Store{ID: 9, Name: "Closed Branch", IsActive: false}

	_, err := stock.NewCandidate(validInput(), inactive, testToday)
	assert.ErrorIs(t, err, domain.ErrValidation, "tienda inactiva debe rechazarse en validación")
}

// ──────────────────────────────────────────────────────────────────────────────
// Generación de números de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestNewStockNumber_Formato(t *testing.T) {
	// Prefijo + timestamp unix + sufijo aleatorio de 4 dígitos.
	format := regexp.MustCompile(`^STK\d{10}\d{4}$`)
	for i := 0; i < 20; i++ {
		n := stock.NewStockNumber()
		assert.Regexp(t, format, n)
	}
}

func TestRegenerateNumber_AsignaNumeroNuevo(t *testing.T) {
	s, err := stock.NewCandidate(validInput(), testStore, testToday)
	require.NoError(t, err)

	// Regenerar hasta observar un número distinto: el sufijo es aleatorio, por
	// lo que una colisión puntual con el anterior es posible pero no repetida.
	original := s.StockNumber
	changed := false
	for i := 0; i < 10 && !changed; i++ {
		stock.RegenerateNumber(s)
		changed = s.StockNumber != original
	}
	assert.True(t, changed, "la regeneración debe producir un número distinto")
}

func TestDateOnly_TruncaHorario(t *testing.T) {
	ts := time.Date(2024, 6, 1, 15, 42, 7, 123, time.Local)
	got := stock.DateOnly(ts)

	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), got)
}
