package custodia_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/flotagest/internal/domain/custodia"
	"github.com/tu-usuario/flotagest/internal/domain/entity"
	"github.com/tu-usuario/flotagest/pkg/fechas"
)

const productoTaladro = "prod-taladro"

// ahora fijo para todos los tests: 15-06-2024 12:00 UTC.
var ahora = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func mov(tipo, responsable string, cantidad int64, fecha, vence string) custodia.Movimiento {
	return custodia.Movimiento{
		ProductoID:  productoTaladro,
		Tipo:        tipo,
		Cantidad:    decimal.NewFromInt(cantidad),
		Responsable: responsable,
		Fecha:       fechas.Parse(fecha),
		Vence:       fechas.Parse(vence),
	}
}

// Escenario: una salida sin retorno queda como asignación activa completa.
func TestReconciliar_SalidaSimple(t *testing.T) {
	movs := []custodia.Movimiento{
		mov(entity.MovTipoSalida, "Ana", 5, "2024-01-10", "2024-01-20"),
	}
	activas := custodia.Reconciliar(productoTaladro, movs, ahora)

	require.Len(t, activas, 1)
	assert.Equal(t, "Ana", activas[0].Responsable)
	assert.True(t, activas[0].CantidadPendiente.Equal(decimal.NewFromInt(5)))
	// vencimiento 20-01-2024, ahora es junio: vencida
	assert.True(t, activas[0].Vencida)
	assert.Equal(t, "20-01-2024", activas[0].PrimerVencimiento.String())
}

// Escenario: salida y retorno completos se cancelan y no se emite asignación.
func TestReconciliar_RetornoCompleto(t *testing.T) {
	movs := []custodia.Movimiento{
		mov(entity.MovTipoSalida, "Ana", 5, "2024-01-10", ""),
		mov(entity.MovTipoRetorno, "Ana", 5, "2024-01-15", ""),
	}
	activas := custodia.Reconciliar(productoTaladro, movs, ahora)
	assert.Empty(t, activas)
}

// Escenario: dos responsables, retorno parcial de uno; orden descendente por saldo.
func TestReconciliar_RetornoParcialYOrden(t *testing.T) {
	movs := []custodia.Movimiento{
		mov(entity.MovTipoSalida, "Ana", 5, "2024-01-10", ""),
		mov(entity.MovTipoSalida, "Beto", 3, "2024-01-11", ""),
		mov(entity.MovTipoRetorno, "Ana", 2, "2024-01-12", ""),
	}
	activas := custodia.Reconciliar(productoTaladro, movs, ahora)

	require.Len(t, activas, 2)
	// Empate 3 y 3: orden estable por primera aparición en la entrada.
	assert.Equal(t, "Ana", activas[0].Responsable)
	assert.True(t, activas[0].CantidadPendiente.Equal(decimal.NewFromInt(3)))
	assert.Equal(t, "Beto", activas[1].Responsable)
	assert.True(t, activas[1].CantidadPendiente.Equal(decimal.NewFromInt(3)))
}

func TestReconciliar_OrdenDescendente(t *testing.T) {
	movs := []custodia.Movimiento{
		mov(entity.MovTipoSalida, "Ana", 2, "2024-01-10", ""),
		mov(entity.MovTipoSalida, "Beto", 7, "2024-01-10", ""),
		mov(entity.MovTipoSalida, "Carla", 4, "2024-01-10", ""),
	}
	activas := custodia.Reconciliar(productoTaladro, movs, ahora)

	require.Len(t, activas, 3)
	assert.Equal(t, "Beto", activas[0].Responsable)
	assert.Equal(t, "Carla", activas[1].Responsable)
	assert.Equal(t, "Ana", activas[2].Responsable)
}

// Propiedad 1: conservación de saldo = Σ(salidas) − Σ(retornos).
func TestReconciliar_ConservacionDeSaldo(t *testing.T) {
	movs := []custodia.Movimiento{
		mov(entity.MovTipoSalida, "Ana", 10, "2024-01-01", ""),
		mov(entity.MovTipoRetorno, "Ana", 3, "2024-01-02", ""),
		mov(entity.MovTipoSalida, "Ana", 4, "2024-01-03", ""),
		mov(entity.MovTipoRetorno, "Ana", 2, "2024-01-04", ""),
	}
	activas := custodia.Reconciliar(productoTaladro, movs, ahora)
	require.Len(t, activas, 1)
	assert.True(t, activas[0].CantidadPendiente.Equal(decimal.NewFromInt(9))) // 10+4-3-2
}

// Propiedad 2: nunca se emiten saldos cero o negativos (sobre-devolución).
func TestReconciliar_SobreDevolucionSeFiltra(t *testing.T) {
	movs := []custodia.Movimiento{
		mov(entity.MovTipoSalida, "Ana", 2, "2024-01-10", ""),
		mov(entity.MovTipoRetorno, "Ana", 5, "2024-01-11", ""),
		mov(entity.MovTipoSalida, "Beto", 1, "2024-01-12", ""),
	}
	activas := custodia.Reconciliar(productoTaladro, movs, ahora)

	require.Len(t, activas, 1)
	assert.Equal(t, "Beto", activas[0].Responsable)
	for _, a := range activas {
		assert.True(t, a.CantidadPendiente.GreaterThan(decimal.Zero))
	}
}

// Propiedad 3: barajar la entrada no cambia saldos ni extremos de fecha.
func TestReconciliar_IndependenciaDelOrden(t *testing.T) {
	base := []custodia.Movimiento{
		mov(entity.MovTipoSalida, "Ana", 5, "2024-01-10", "2024-02-01"),
		mov(entity.MovTipoSalida, "Ana", 2, "2024-01-20", "2024-01-25"),
		mov(entity.MovTipoRetorno, "Ana", 3, "2024-02-05", ""),
		mov(entity.MovTipoSalida, "Beto", 4, "2024-01-15", ""),
		mov(entity.MovTipoEntrada, "Ana", 100, "2024-03-01", ""),
	}
	referencia := custodia.Reconciliar(productoTaladro, base, ahora)

	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		barajado := make([]custodia.Movimiento, len(base))
		copy(barajado, base)
		rnd.Shuffle(len(barajado), func(a, b int) { barajado[a], barajado[b] = barajado[b], barajado[a] })

		activas := custodia.Reconciliar(productoTaladro, barajado, ahora)
		require.Len(t, activas, len(referencia))

		porResp := make(map[string]custodia.Asignacion)
		for _, a := range activas {
			porResp[a.Responsable] = a
		}
		for _, ref := range referencia {
			got, ok := porResp[ref.Responsable]
			require.True(t, ok, "falta %s", ref.Responsable)
			assert.True(t, got.CantidadPendiente.Equal(ref.CantidadPendiente))
			assert.Equal(t, ref.UltimaActividad.String(), got.UltimaActividad.String())
			assert.Equal(t, ref.PrimerVencimiento.String(), got.PrimerVencimiento.String())
		}
	}
}

// Propiedad 4: responsables en blanco se agrupan en una sola cubeta "Sin asignar".
func TestReconciliar_SinAsignarAgrupado(t *testing.T) {
	movs := []custodia.Movimiento{
		mov(entity.MovTipoSalida, "", 2, "2024-01-10", ""),
		mov(entity.MovTipoSalida, "", 3, "2024-01-11", ""),
		mov(entity.MovTipoSalida, "Ana", 1, "2024-01-12", ""),
	}
	activas := custodia.Reconciliar(productoTaladro, movs, ahora)

	require.Len(t, activas, 2)
	assert.Equal(t, custodia.ResponsableSinAsignar, activas[0].Responsable)
	assert.True(t, activas[0].CantidadPendiente.Equal(decimal.NewFromInt(5)))
}

// Propiedad 5: frontera de vencimiento a granularidad fin-de-día.
func TestReconciliar_FronteraVencimiento(t *testing.T) {
	casos := []struct {
		nombre  string
		vence   string
		vencida bool
	}{
		{"ayer", "14-06-2024", true},
		{"hoy", "15-06-2024", false},
		{"manana", "16-06-2024", false},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			movs := []custodia.Movimiento{
				mov(entity.MovTipoSalida, "Ana", 1, "2024-06-01", c.vence),
			}
			activas := custodia.Reconciliar(productoTaladro, movs, ahora)
			require.Len(t, activas, 1)
			assert.Equal(t, c.vencida, activas[0].Vencida)
		})
	}
}

// Entrada/traslado/baja no afectan el saldo pero sí la última actividad.
func TestReconciliar_OtrosTiposSoloActividad(t *testing.T) {
	movs := []custodia.Movimiento{
		mov(entity.MovTipoSalida, "Ana", 5, "2024-01-10", ""),
		mov(entity.MovTipoBaja, "Ana", 99, "2024-02-01", ""),
		mov(entity.MovTipoTraslado, "Ana", 50, "2024-03-01", ""),
	}
	activas := custodia.Reconciliar(productoTaladro, movs, ahora)

	require.Len(t, activas, 1)
	assert.True(t, activas[0].CantidadPendiente.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, "01-03-2024", activas[0].UltimaActividad.String())
}

// Movimientos de otros productos quedan fuera; lista vacía no es error.
func TestReconciliar_FiltroPorProductoYVacio(t *testing.T) {
	movs := []custodia.Movimiento{
		{ProductoID: "otro", Tipo: entity.MovTipoSalida, Cantidad: decimal.NewFromInt(9), Responsable: "Ana"},
	}
	assert.Empty(t, custodia.Reconciliar(productoTaladro, movs, ahora))
	assert.Empty(t, custodia.Reconciliar(productoTaladro, nil, ahora))
}

// Propiedad 9: un vencimiento no parseable ("31-02-2024") no aborta la pasada;
// la asignación sale igual, sin vencimiento efectivo.
func TestReconciliar_VencimientoMalformado(t *testing.T) {
	movs := []custodia.Movimiento{
		mov(entity.MovTipoSalida, "Ana", 5, "2024-01-10", "31-02-2024"),
	}
	activas := custodia.Reconciliar(productoTaladro, movs, ahora)

	require.Len(t, activas, 1)
	assert.False(t, activas[0].Vencida)
	assert.Equal(t, "31-02-2024", activas[0].PrimerVencimiento.String())
}

// Mínimo de vencimiento primero-observado: devolver parcial no "libera" el
// vencimiento más antiguo (limitación documentada del reconciliador).
func TestReconciliar_VencimientoMinimoObservado(t *testing.T) {
	movs := []custodia.Movimiento{
		mov(entity.MovTipoSalida, "Ana", 2, "2024-01-10", "2024-01-20"),
		mov(entity.MovTipoSalida, "Ana", 2, "2024-02-10", "2024-03-20"),
		mov(entity.MovTipoRetorno, "Ana", 2, "2024-02-15", ""),
	}
	activas := custodia.Reconciliar(productoTaladro, movs, ahora)

	require.Len(t, activas, 1)
	assert.Equal(t, "20-01-2024", activas[0].PrimerVencimiento.String())
}

// DesdeEntidad mapea el movimiento persistido a la vista de reconciliación.
func TestDesdeEntidad(t *testing.T) {
	vence := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	m := &entity.MovimientoAlmacen{
		ProductoID:       productoTaladro,
		Tipo:             entity.MovTipoSalida,
		Cantidad:         decimal.NewFromInt(3),
		Responsable:      "Ana",
		Fecha:            time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC),
		FechaVencimiento: &vence,
	}
	v := custodia.DesdeEntidad(m)
	assert.True(t, v.Fecha.Valida())
	assert.True(t, v.Vence.Valida())
	assert.Equal(t, "01-07-2024", v.Vence.String())

	m.FechaVencimiento = nil
	assert.False(t, custodia.DesdeEntidad(m).Vence.Valida())
}
