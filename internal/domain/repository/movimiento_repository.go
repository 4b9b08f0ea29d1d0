package repository

import (
	"time"

	"github.com/tu-usuario/flotagest/internal/domain/entity"
)

// MovimientoRepository define el puerto de persistencia para el libro de
// movimientos de almacén. Append-only: no hay Update ni Delete.
type MovimientoRepository interface {
	Create(m *entity.MovimientoAlmacen) error
	GetByID(id string) (*entity.MovimientoAlmacen, error)
	// ListByProducto devuelve el historial completo del producto en orden
	// cronológico; es la entrada de la reconciliación de custodia.
	ListByProducto(productoID string) ([]*entity.MovimientoAlmacen, error)
	ListByBodega(bodegaID string, from, to *time.Time, limit, offset int) ([]*entity.MovimientoAlmacen, error)
	ListByRango(from, to time.Time) ([]*entity.MovimientoAlmacen, error)
}
