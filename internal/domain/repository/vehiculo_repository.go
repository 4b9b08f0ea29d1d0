package repository

import "github.com/tu-usuario/flotagest/internal/domain/entity"

// VehiculoRepository define el puerto de persistencia para vehículos.
type VehiculoRepository interface {
	Create(v *entity.Vehiculo) error
	GetByID(id string) (*entity.Vehiculo, error)
	GetByPlaca(placa string) (*entity.Vehiculo, error)
	List(limit, offset int) ([]*entity.Vehiculo, error)
	Update(v *entity.Vehiculo) error
	Delete(id string) error
}
