package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateVehiculoRequest entrada para crear un vehículo.
type CreateVehiculoRequest struct {
	Placa           string          `json:"placa" validate:"required,min=5,max=10"`
	Marca           string          `json:"marca"`
	Modelo          string          `json:"modelo"`
	Anio            int             `json:"anio"`
	TipoCombustible string          `json:"tipo_combustible" validate:"required"`
	Odometro        decimal.Decimal `json:"odometro"`
}

// UpdateVehiculoRequest entrada para actualizar un vehículo.
type UpdateVehiculoRequest struct {
	Marca    *string          `json:"marca"`
	Modelo   *string          `json:"modelo"`
	Anio     *int             `json:"anio"`
	Estado   *string          `json:"estado"`
	Odometro *decimal.Decimal `json:"odometro"`
}

// VehiculoResponse salida de un vehículo.
type VehiculoResponse struct {
	ID              string          `json:"id"`
	Placa           string          `json:"placa"`
	Marca           string          `json:"marca"`
	Modelo          string          `json:"modelo"`
	Anio            int             `json:"anio"`
	TipoCombustible string          `json:"tipo_combustible"`
	Odometro        decimal.Decimal `json:"odometro"`
	Estado          string          `json:"estado"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// VehiculoListResponse lista paginada de vehículos.
type VehiculoListResponse struct {
	Items []VehiculoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
