package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMantenimientoRequest entrada para crear una orden de mantenimiento.
// FechaInicio admite los formatos heterogéneos de pkg/fechas; vacía = ahora.
type CreateMantenimientoRequest struct {
	VehiculoID  string          `json:"vehiculo_id" validate:"required"`
	Tipo        string          `json:"tipo" validate:"required"`
	Descripcion string          `json:"descripcion"`
	Taller      string          `json:"taller"`
	Costo       decimal.Decimal `json:"costo"`
	FechaInicio string          `json:"fecha_inicio,omitempty"`
}

// UpdateMantenimientoRequest entrada para actualizar una orden.
type UpdateMantenimientoRequest struct {
	Estado      *string          `json:"estado"`
	Descripcion *string          `json:"descripcion"`
	Taller      *string          `json:"taller"`
	Costo       *decimal.Decimal `json:"costo"`
	FechaFin    *string          `json:"fecha_fin"`
}

// MantenimientoResponse salida de una orden de mantenimiento.
type MantenimientoResponse struct {
	ID          string          `json:"id"`
	VehiculoID  string          `json:"vehiculo_id"`
	Tipo        string          `json:"tipo"`
	Estado      string          `json:"estado"`
	Descripcion string          `json:"descripcion"`
	Taller      string          `json:"taller"`
	Costo       decimal.Decimal `json:"costo"`
	FechaInicio time.Time       `json:"fecha_inicio"`
	FechaFin    *time.Time      `json:"fecha_fin,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// MantenimientoListResponse lista paginada de órdenes.
type MantenimientoListResponse struct {
	Items []MantenimientoResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
