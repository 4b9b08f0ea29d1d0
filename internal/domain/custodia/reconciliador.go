// Package custodia implementa la reconciliación del libro de movimientos de
// almacén: a partir del historial append-only de un producto retornable,
// calcula quién tiene unidades en su poder, desde cuándo y con qué vencimiento.
//
// El saldo por responsable nunca se almacena; se deriva completo en cada
// pasada. El contador "en uso" que mantiene la tabla de productos debería
// coincidir en régimen con la suma de saldos positivos, pero la reconciliación
// tolera desvíos (contadores ajustados a mano) sin fallar.
package custodia

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/flotagest/internal/domain/entity"
	"github.com/tu-usuario/flotagest/pkg/fechas"
)

// ResponsableSinAsignar agrupa los movimientos sin responsable declarado en una
// sola cubeta en lugar de descartarlos.
const ResponsableSinAsignar = "Sin asignar"

// Movimiento es la vista mínima del libro que necesita la reconciliación.
// Las fechas ya pasaron por pkg/fechas; una fecha inválida se excluye de los
// extremos min/max pero no aborta la pasada.
type Movimiento struct {
	ProductoID  string
	Tipo        string
	Cantidad    decimal.Decimal
	Responsable string
	Fecha       fechas.Fecha
	Vence       fechas.Fecha
}

// Asignacion es el hecho derivado de que un responsable tiene un saldo neto
// positivo de un producto retornable. Vive solo lo que dura una pasada: no
// conserva identidad entre reconciliaciones.
type Asignacion struct {
	Responsable       string
	CantidadPendiente decimal.Decimal
	UltimaActividad   fechas.Fecha
	PrimerVencimiento fechas.Fecha
	Vencida           bool
}

// acumulador es el estado parcial por responsable durante una pasada.
type acumulador struct {
	pendiente decimal.Decimal
	ultima    fechas.Fecha
	vence     fechas.Fecha
}

// Reconciliar recorre los movimientos de un producto y devuelve las
// asignaciones activas (saldo > 0) ordenadas por cantidad pendiente
// descendente. Es una función pura: sin I/O, sin estado oculto, mismo
// resultado para las mismas entradas.
//
// Reglas por tipo:
//   - salida:  suma al saldo del responsable; si trae vencimiento, se toma el
//     mínimo observado (no hay apareo FIFO entre salidas y retornos — ver
//     la nota de limitación más abajo).
//   - retorno: resta del saldo.
//   - entrada, traslado y baja no afectan la custodia (mueven stock de
//     bodega, no responsabilidad personal), pero sí cuentan como actividad.
//
// Un saldo que queda en cero o negativo (más retornos que salidas) se filtra
// en silencio; la sobre-devolución se reconcilia sola en la siguiente pasada.
//
// Limitación conocida: el vencimiento por responsable es el mínimo de todas
// sus salidas, sin asociar retornos parciales a salidas concretas. Quien hizo
// dos salidas con vencimientos distintos y devolvió la primera puede seguir
// mostrando el vencimiento de las unidades ya devueltas.
func Reconciliar(productoID string, movs []Movimiento, ahora time.Time) []Asignacion {
	saldos := make(map[string]*acumulador)
	orden := make([]string, 0)

	for _, m := range movs {
		if m.ProductoID != productoID {
			continue
		}
		resp := m.Responsable
		if resp == "" {
			resp = ResponsableSinAsignar
		}
		acc, ok := saldos[resp]
		if !ok {
			acc = &acumulador{pendiente: decimal.Zero}
			saldos[resp] = acc
			orden = append(orden, resp)
		}

		// Toda actividad cuenta para "última actividad", sin importar el tipo.
		acc.ultima = fechas.Max(acc.ultima, m.Fecha)

		switch m.Tipo {
		case entity.MovTipoSalida:
			acc.pendiente = acc.pendiente.Add(m.Cantidad)
			acc.vence = fechas.Min(acc.vence, m.Vence)
		case entity.MovTipoRetorno:
			acc.pendiente = acc.pendiente.Sub(m.Cantidad)
		}
	}

	activas := make([]Asignacion, 0, len(orden))
	for _, resp := range orden {
		acc := saldos[resp]
		if !acc.pendiente.GreaterThan(decimal.Zero) {
			continue
		}
		activas = append(activas, Asignacion{
			Responsable:       resp,
			CantidadPendiente: acc.pendiente,
			UltimaActividad:   acc.ultima,
			PrimerVencimiento: acc.vence,
			Vencida:           acc.vence.DiaVencido(ahora),
		})
	}

	sort.SliceStable(activas, func(i, j int) bool {
		return activas[i].CantidadPendiente.GreaterThan(activas[j].CantidadPendiente)
	})
	return activas
}

// DesdeEntidad adapta un movimiento persistido a la vista de reconciliación.
func DesdeEntidad(m *entity.MovimientoAlmacen) Movimiento {
	vence := fechas.Invalida
	if m.FechaVencimiento != nil {
		vence = fechas.Desde(*m.FechaVencimiento)
	}
	return Movimiento{
		ProductoID:  m.ProductoID,
		Tipo:        m.Tipo,
		Cantidad:    m.Cantidad,
		Responsable: m.Responsable,
		Fecha:       fechas.Desde(m.Fecha),
		Vence:       vence,
	}
}
