package dto

import "github.com/shopspring/decimal"

// RegistrarConsumoRequest body para POST /api/consumos.
// Fecha admite los formatos heterogéneos de pkg/fechas; vacía = ahora.
type RegistrarConsumoRequest struct {
	VehiculoID string           `json:"vehiculo_id"`
	TanqueID   string           `json:"tanque_id"`
	Litros     CantidadFlexible `json:"litros"`
	Odometro   CantidadFlexible `json:"odometro"`
	Conductor  string           `json:"conductor,omitempty"`
	Nota       string           `json:"nota,omitempty"`
	Fecha      string           `json:"fecha,omitempty"`
}

// ConsumoResponse salida de un consumo de combustible.
type ConsumoResponse struct {
	ID         string          `json:"id"`
	VehiculoID string          `json:"vehiculo_id"`
	TanqueID   string          `json:"tanque_id"`
	Litros     decimal.Decimal `json:"litros"`
	Odometro   decimal.Decimal `json:"odometro"`
	Conductor  string          `json:"conductor,omitempty"`
	Nota       string          `json:"nota,omitempty"`
	Fecha      string          `json:"fecha"`
}

// ConsumoListResponse lista paginada de consumos.
type ConsumoListResponse struct {
	Items []ConsumoResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
