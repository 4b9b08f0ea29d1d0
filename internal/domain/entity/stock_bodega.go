package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockBodega representa el stock materializado de un producto en una bodega.
// Se actualiza solo dentro de transacciones con bloqueo de fila.
type StockBodega struct {
	ProductoID string
	BodegaID   string
	Cantidad   decimal.Decimal
	UpdatedAt  time.Time
}
