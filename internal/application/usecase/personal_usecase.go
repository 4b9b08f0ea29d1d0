package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/flotagest/internal/application/dto"
	"github.com/tu-usuario/flotagest/internal/domain"
	"github.com/tu-usuario/flotagest/internal/domain/entity"
	"github.com/tu-usuario/flotagest/internal/domain/repository"
)

// PersonalUseCase casos de uso CRUD para el personal de la operación.
type PersonalUseCase struct {
	repo repository.PersonalRepository
}

// NewPersonalUseCase construye el caso de uso.
func NewPersonalUseCase(repo repository.PersonalRepository) *PersonalUseCase {
	return &PersonalUseCase{repo: repo}
}

// Create crea una persona nueva. El documento es único.
func (uc *PersonalUseCase) Create(in dto.CreatePersonalRequest) (*dto.PersonalResponse, error) {
	if in.Documento == "" || in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	existente, _ := uc.repo.GetByDocumento(in.Documento)
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	p := &entity.Personal{
		ID:        uuid.New().String(),
		Documento: in.Documento,
		Nombre:    in.Nombre,
		Cargo:     in.Cargo,
		Licencia:  in.Licencia,
		Telefono:  in.Telefono,
		Activo:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toPersonalResponse(p), nil
}

// GetByID obtiene una persona por ID.
func (uc *PersonalUseCase) GetByID(id string) (*dto.PersonalResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toPersonalResponse(p), nil
}

// Update actualiza una persona.
func (uc *PersonalUseCase) Update(id string, in dto.UpdatePersonalRequest) (*dto.PersonalResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		p.Nombre = *in.Nombre
	}
	if in.Cargo != nil {
		p.Cargo = *in.Cargo
	}
	if in.Licencia != nil {
		p.Licencia = *in.Licencia
	}
	if in.Telefono != nil {
		p.Telefono = *in.Telefono
	}
	if in.Activo != nil {
		p.Activo = *in.Activo
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toPersonalResponse(p), nil
}

// List lista personal con paginación.
func (uc *PersonalUseCase) List(limit, offset int) (*dto.PersonalListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PersonalResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPersonalResponse(p))
	}
	return &dto.PersonalListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una persona por ID.
func (uc *PersonalUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toPersonalResponse(p *entity.Personal) *dto.PersonalResponse {
	if p == nil {
		return nil
	}
	return &dto.PersonalResponse{
		ID:        p.ID,
		Documento: p.Documento,
		Nombre:    p.Nombre,
		Cargo:     p.Cargo,
		Licencia:  p.Licencia,
		Telefono:  p.Telefono,
		Activo:    p.Activo,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
