package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tanque representa un tanque de combustible con nivel materializado.
// El nivel se modifica solo dentro de transacciones (consumo/recarga con
// bloqueo de fila), nunca por escritura directa.
type Tanque struct {
	ID              string
	Nombre          string
	TipoCombustible string
	Capacidad       decimal.Decimal // litros
	Nivel           decimal.Decimal // litros actuales
	UmbralCritico   decimal.Decimal // litros; en o bajo este nivel se alerta
	Ubicacion       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EnNivelCritico indica si el tanque está en o bajo su umbral de alerta.
func (t *Tanque) EnNivelCritico() bool {
	return t.Nivel.LessThanOrEqual(t.UmbralCritico)
}
