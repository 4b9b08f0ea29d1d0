package repository

import (
	"time"

	"github.com/tu-usuario/flotagest/internal/domain/entity"
)

// ConsumoRepository define el puerto de persistencia para consumos de combustible.
type ConsumoRepository interface {
	Create(c *entity.ConsumoCombustible) error
	GetByID(id string) (*entity.ConsumoCombustible, error)
	ListByVehiculo(vehiculoID string, from, to *time.Time, limit, offset int) ([]*entity.ConsumoCombustible, error)
	ListByRango(from, to time.Time) ([]*entity.ConsumoCombustible, error)
}
