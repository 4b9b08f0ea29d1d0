package repository

import "github.com/tu-usuario/flotagest/internal/domain/entity"

// MantenimientoRepository define el puerto de persistencia para órdenes de mantenimiento.
type MantenimientoRepository interface {
	Create(m *entity.Mantenimiento) error
	GetByID(id string) (*entity.Mantenimiento, error)
	ListByVehiculo(vehiculoID string, limit, offset int) ([]*entity.Mantenimiento, error)
	List(limit, offset int) ([]*entity.Mantenimiento, error)
	Update(m *entity.Mantenimiento) error
	CountEnCurso() (int, error)
}
