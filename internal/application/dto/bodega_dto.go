package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBodegaRequest entrada para crear una bodega.
type CreateBodegaRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=1,max=200"`
	Direccion   string `json:"direccion"`
	Responsable string `json:"responsable"`
}

// UpdateBodegaRequest entrada para actualizar una bodega.
type UpdateBodegaRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Direccion   *string `json:"direccion"`
	Responsable *string `json:"responsable"`
}

// BodegaResponse salida de una bodega.
type BodegaResponse struct {
	ID          string    `json:"id"`
	Nombre      string    `json:"nombre"`
	Direccion   string    `json:"direccion"`
	Responsable string    `json:"responsable"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BodegaListResponse lista paginada de bodegas.
type BodegaListResponse struct {
	Items []BodegaResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// StockBodegaDTO stock de un producto en una bodega.
type StockBodegaDTO struct {
	ProductoID string          `json:"producto_id"`
	BodegaID   string          `json:"bodega_id"`
	Cantidad   decimal.Decimal `json:"cantidad"`
}
