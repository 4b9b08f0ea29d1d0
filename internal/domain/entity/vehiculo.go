package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un vehículo de la flota.
const (
	VehiculoActivo        = "activo"
	VehiculoEnTaller      = "en_taller"
	VehiculoFueraServicio = "fuera_servicio"
)

// Tipos de combustible admitidos.
const (
	CombustibleDiesel   = "diesel"
	CombustibleGasolina = "gasolina"
	CombustibleGas      = "gas"
)

// Vehiculo representa una unidad de la flota.
type Vehiculo struct {
	ID              string
	Placa           string // única
	Marca           string
	Modelo          string
	Anio            int
	TipoCombustible string
	Odometro        decimal.Decimal // km acumulados; nunca retrocede
	Estado          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
