package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de almacén. El libro es historial inmutable: los saldos
// de custodia se derivan, nunca se guardan.
const (
	MovTipoEntrada  = "entrada"  // ingreso de stock a bodega
	MovTipoSalida   = "salida"   // entrega/préstamo a un responsable
	MovTipoTraslado = "traslado" // entre bodegas
	MovTipoRetorno  = "retorno"  // devolución de unidades entregadas
	MovTipoBaja     = "baja"     // baja definitiva (pérdida, daño)
)

// TipoMovimientoValido valida el tipo en la frontera de ingreso, para que el
// switch del reconciliador y de los casos de uso opere sobre un conjunto cerrado.
func TipoMovimientoValido(t string) bool {
	switch t {
	case MovTipoEntrada, MovTipoSalida, MovTipoTraslado, MovTipoRetorno, MovTipoBaja:
		return true
	}
	return false
}

// MovimientoAlmacen representa una transacción del libro de almacén
// (append-only: sin Update ni Delete; las correcciones son movimientos nuevos).
type MovimientoAlmacen struct {
	ID               string
	ProductoID       string
	BodegaID         string
	BodegaDestinoID  string // solo traslado
	Tipo             string
	Cantidad         decimal.Decimal // siempre positiva; el signo lo da el tipo
	Responsable      string          // persona/entidad a la que se atribuye
	Referencia       string          // guía, orden, bodega destino
	Nota             string
	Fecha            time.Time
	FechaVencimiento *time.Time // solo salida de producto retornable
	CreatedAt        time.Time
	CreatedBy        string // UserID
}
