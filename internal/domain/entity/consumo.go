package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConsumoCombustible registra una carga de combustible desde un tanque hacia
// un vehículo. Append-only: el historial alimenta reportes y KPIs.
type ConsumoCombustible struct {
	ID         string
	VehiculoID string
	TanqueID   string
	Litros     decimal.Decimal
	Odometro   decimal.Decimal // lectura al momento de la carga
	Conductor  string
	Nota       string
	Fecha      time.Time
	CreatedAt  time.Time
	CreatedBy  string
}
