package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest entrada para crear un producto de almacén.
type CreateProductoRequest struct {
	Codigo      string          `json:"codigo" validate:"required"`
	Nombre      string          `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion string          `json:"descripcion"`
	Unidad      string          `json:"unidad"`
	Retornable  bool            `json:"retornable"`
	StockMinimo decimal.Decimal `json:"stock_minimo"`
}

// UpdateProductoRequest entrada para actualizar un producto.
type UpdateProductoRequest struct {
	Nombre      *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Descripcion *string          `json:"descripcion"`
	Unidad      *string          `json:"unidad"`
	Retornable  *bool            `json:"retornable"`
	StockMinimo *decimal.Decimal `json:"stock_minimo"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID          string          `json:"id"`
	Codigo      string          `json:"codigo"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Unidad      string          `json:"unidad"`
	Retornable  bool            `json:"retornable"`
	StockMinimo decimal.Decimal `json:"stock_minimo"`
	EnUso       decimal.Decimal `json:"en_uso"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductoListResponse lista paginada de productos.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
