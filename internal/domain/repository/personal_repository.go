package repository

import "github.com/tu-usuario/flotagest/internal/domain/entity"

// PersonalRepository define el puerto de persistencia para el personal.
type PersonalRepository interface {
	Create(p *entity.Personal) error
	GetByID(id string) (*entity.Personal, error)
	GetByDocumento(documento string) (*entity.Personal, error)
	List(limit, offset int) ([]*entity.Personal, error)
	Update(p *entity.Personal) error
	Delete(id string) error
}
