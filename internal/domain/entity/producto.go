package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un artículo de almacén (repuesto, herramienta, insumo).
// EnUso es un contador informativo de unidades entregadas a responsables; el
// saldo real por persona se deriva siempre del libro de movimientos y puede
// diferir si el contador fue ajustado a mano.
type Producto struct {
	ID          string
	Codigo      string // único
	Nombre      string
	Descripcion string
	Unidad      string // unidad de medida: un, lt, kg
	Retornable  bool   // las herramientas se prestan y se devuelven
	StockMinimo decimal.Decimal
	EnUso       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
