package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de mantenimiento.
const (
	MantPreventivo = "preventivo"
	MantCorrectivo = "correctivo"
)

// Estados de una orden de mantenimiento.
const (
	MantProgramado = "programado"
	MantEnCurso    = "en_curso"
	MantFinalizado = "finalizado"
)

// Mantenimiento representa una orden de mantenimiento de un vehículo.
type Mantenimiento struct {
	ID          string
	VehiculoID  string
	Tipo        string
	Estado      string
	Descripcion string
	Taller      string
	Costo       decimal.Decimal
	FechaInicio time.Time
	FechaFin    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatedBy   string
}
