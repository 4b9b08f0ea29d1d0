package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTanqueRequest entrada para crear un tanque.
type CreateTanqueRequest struct {
	Nombre          string          `json:"nombre" validate:"required,min=1,max=200"`
	TipoCombustible string          `json:"tipo_combustible" validate:"required"`
	Capacidad       decimal.Decimal `json:"capacidad"`
	Nivel           decimal.Decimal `json:"nivel"`
	UmbralCritico   decimal.Decimal `json:"umbral_critico"`
	Ubicacion       string          `json:"ubicacion"`
}

// UpdateTanqueRequest entrada para actualizar un tanque.
// El nivel no se toca por aquí: solo cambia vía consumo/recarga transaccional.
type UpdateTanqueRequest struct {
	Nombre        *string          `json:"nombre"`
	Capacidad     *decimal.Decimal `json:"capacidad"`
	UmbralCritico *decimal.Decimal `json:"umbral_critico"`
	Ubicacion     *string          `json:"ubicacion"`
}

// TanqueResponse salida de un tanque.
type TanqueResponse struct {
	ID              string          `json:"id"`
	Nombre          string          `json:"nombre"`
	TipoCombustible string          `json:"tipo_combustible"`
	Capacidad       decimal.Decimal `json:"capacidad"`
	Nivel           decimal.Decimal `json:"nivel"`
	UmbralCritico   decimal.Decimal `json:"umbral_critico"`
	EnNivelCritico  bool            `json:"en_nivel_critico"`
	Ubicacion       string          `json:"ubicacion"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// TanqueListResponse lista paginada de tanques.
type TanqueListResponse struct {
	Items []TanqueResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// RecargaTanqueRequest body para POST /api/tanques/:id/recargas.
type RecargaTanqueRequest struct {
	Litros     CantidadFlexible `json:"litros"`
	Referencia string           `json:"referencia,omitempty"`
}
