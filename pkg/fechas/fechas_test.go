package fechas_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/flotagest/pkg/fechas"
)

// Caso 1: formatos directos (RFC3339 e ISO sin zona) se parsean primero.
func TestParse_FormatosDirectos(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado time.Time
	}{
		{"2024-01-10T08:30:00Z", time.Date(2024, 1, 10, 8, 30, 0, 0, time.UTC)},
		{"2024-01-10T08:30:00", time.Date(2024, 1, 10, 8, 30, 0, 0, time.UTC)},
		{"2024-01-10 08:30:00", time.Date(2024, 1, 10, 8, 30, 0, 0, time.UTC)},
	}
	for _, c := range casos {
		f := fechas.Parse(c.entrada)
		require.True(t, f.Valida(), "entrada %q", c.entrada)
		assert.True(t, f.Time().Equal(c.esperado), "entrada %q: %v", c.entrada, f.Time())
	}
}

// Caso 2: triple con guiones, primer componente de 4 dígitos = YYYY-MM-DD.
func TestParse_ISOSoloFecha(t *testing.T) {
	f := fechas.Parse("2024-03-15")
	require.True(t, f.Valida())
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), f.Time())
}

// Caso 3: DD-MM-YYYY, con y sin HH:mm.
func TestParse_FormatoLocal(t *testing.T) {
	f := fechas.Parse("15-03-2024")
	require.True(t, f.Valida())
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), f.Time())

	f = fechas.Parse("15-03-2024 10:45")
	require.True(t, f.Valida())
	assert.Equal(t, time.Date(2024, 3, 15, 10, 45, 0, 0, time.UTC), f.Time())
}

// Fechas ambiguas (día ≤ 12): el largo del primer componente decide.
func TestParse_Ambigua(t *testing.T) {
	// 05-03-2024 es 5 de marzo, no 3 de mayo.
	f := fechas.Parse("05-03-2024")
	require.True(t, f.Valida())
	assert.Equal(t, time.March, f.Time().Month())
	assert.Equal(t, 5, f.Time().Day())
}

// Entradas no parseables: centinela inválido, String() devuelve el original.
func TestParse_Invalida(t *testing.T) {
	casos := []string{"", "   ", "no es fecha", "31-02-2024", "2024-13-40", "10/01/2024"}
	for _, entrada := range casos {
		f := fechas.Parse(entrada)
		assert.False(t, f.Valida(), "entrada %q no debería parsear", entrada)
	}
	assert.Equal(t, "31-02-2024", fechas.Parse("31-02-2024").String())
	assert.Equal(t, "no es fecha", fechas.Parse("no es fecha").String())
}

func TestString_Presentacion(t *testing.T) {
	assert.Equal(t, "15-03-2024", fechas.Parse("2024-03-15").String())
	assert.Equal(t, "15-03-2024 10:45", fechas.Parse("15-03-2024 10:45").String())
}

// Comparaciones: inválidas nunca ordenan.
func TestComparaciones(t *testing.T) {
	a := fechas.Parse("10-01-2024")
	b := fechas.Parse("15-01-2024")
	mala := fechas.Parse("basura")

	assert.True(t, a.Antes(b))
	assert.False(t, b.Antes(a))
	assert.True(t, b.Despues(a))
	assert.False(t, mala.Antes(a))
	assert.False(t, a.Antes(mala))
	assert.False(t, mala.Despues(a))
}

// Min/Max ignoran fechas inválidas en ambas posiciones.
func TestMinMax_IgnoraInvalidas(t *testing.T) {
	a := fechas.Parse("10-01-2024")
	b := fechas.Parse("15-01-2024")
	mala := fechas.Parse("xx")

	assert.Equal(t, a, fechas.Min(a, b))
	assert.Equal(t, b, fechas.Max(a, b))
	assert.Equal(t, a, fechas.Min(mala, a))
	assert.Equal(t, a, fechas.Min(a, mala))
	assert.Equal(t, b, fechas.Max(mala, b))
	assert.False(t, fechas.Min(mala, mala).Valida())
}

// Granularidad fin-de-día: ayer vencida, hoy y mañana no.
func TestDiaVencido(t *testing.T) {
	ahora := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	ayer := fechas.Parse("14-06-2024")
	hoy := fechas.Parse("15-06-2024")
	manana := fechas.Parse("16-06-2024")
	mala := fechas.Parse("??")

	assert.True(t, ayer.DiaVencido(ahora))
	assert.False(t, hoy.DiaVencido(ahora))
	assert.False(t, manana.DiaVencido(ahora))
	assert.False(t, mala.DiaVencido(ahora))
}
