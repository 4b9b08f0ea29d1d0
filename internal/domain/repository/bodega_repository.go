package repository

import "github.com/tu-usuario/flotagest/internal/domain/entity"

// BodegaRepository define el puerto de persistencia para bodegas.
type BodegaRepository interface {
	Create(b *entity.Bodega) error
	GetByID(id string) (*entity.Bodega, error)
	List(limit, offset int) ([]*entity.Bodega, error)
	Update(b *entity.Bodega) error
	Delete(id string) error
}
