package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/flotagest/internal/domain/entity"
)

// ProductoRepository define el puerto de persistencia para productos de almacén.
type ProductoRepository interface {
	Create(p *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	GetByCodigo(codigo string) (*entity.Producto, error)
	List(limit, offset int) ([]*entity.Producto, error)
	// ListRetornables devuelve los productos sujetos a custodia por responsable.
	ListRetornables() ([]*entity.Producto, error)
	Update(p *entity.Producto) error
	// UpdateEnUso ajusta el contador informativo de unidades entregadas.
	// El saldo real por responsable se deriva siempre del libro de movimientos.
	UpdateEnUso(id string, delta decimal.Decimal) error
	Delete(id string) error
}
