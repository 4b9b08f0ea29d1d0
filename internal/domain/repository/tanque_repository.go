package repository

import "github.com/tu-usuario/flotagest/internal/domain/entity"

// TanqueRepository define el puerto de persistencia para tanques de combustible.
// GetForUpdate bloquea la fila (SELECT FOR UPDATE); usar solo dentro de una tx.
type TanqueRepository interface {
	Create(t *entity.Tanque) error
	GetByID(id string) (*entity.Tanque, error)
	GetForUpdate(id string) (*entity.Tanque, error)
	List(limit, offset int) ([]*entity.Tanque, error)
	ListCriticos() ([]*entity.Tanque, error)
	Update(t *entity.Tanque) error
	UpdateNivel(t *entity.Tanque) error
	Delete(id string) error
}
