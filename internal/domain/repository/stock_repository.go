package repository

import "github.com/tu-usuario/flotagest/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar stock por bodega+producto.
// Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	// Get devuelve la fila de stock; si no existe, una fila en cero (sin error).
	Get(productoID, bodegaID string) (*entity.StockBodega, error)
	Upsert(s *entity.StockBodega) error
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(productoID, bodegaID string) (*entity.StockBodega, error)
	ListByBodega(bodegaID string) ([]*entity.StockBodega, error)
}
