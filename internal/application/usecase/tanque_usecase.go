package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/flotagest/internal/application/dto"
	"github.com/tu-usuario/flotagest/internal/domain"
	"github.com/tu-usuario/flotagest/internal/domain/entity"
	"github.com/tu-usuario/flotagest/internal/domain/repository"
)

// TanqueUseCase casos de uso CRUD para tanques. El nivel nunca se edita por
// aquí: solo cambia vía consumo/recarga transaccional (paquete combustible).
type TanqueUseCase struct {
	repo repository.TanqueRepository
}

// NewTanqueUseCase construye el caso de uso.
func NewTanqueUseCase(repo repository.TanqueRepository) *TanqueUseCase {
	return &TanqueUseCase{repo: repo}
}

// Create crea un tanque nuevo.
func (uc *TanqueUseCase) Create(in dto.CreateTanqueRequest) (*dto.TanqueResponse, error) {
	if in.Nombre == "" || in.TipoCombustible == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Nivel.GreaterThan(in.Capacidad) {
		return nil, domain.ErrCapacidadExcedida
	}
	now := time.Now()
	t := &entity.Tanque{
		ID:              uuid.New().String(),
		Nombre:          in.Nombre,
		TipoCombustible: in.TipoCombustible,
		Capacidad:       in.Capacidad,
		Nivel:           in.Nivel,
		UmbralCritico:   in.UmbralCritico,
		Ubicacion:       in.Ubicacion,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(t); err != nil {
		return nil, err
	}
	return toTanqueResponse(t), nil
}

// GetByID obtiene un tanque por ID.
func (uc *TanqueUseCase) GetByID(id string) (*dto.TanqueResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	return toTanqueResponse(t), nil
}

// Update actualiza los datos administrativos de un tanque.
func (uc *TanqueUseCase) Update(id string, in dto.UpdateTanqueRequest) (*dto.TanqueResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		t.Nombre = *in.Nombre
	}
	if in.Capacidad != nil {
		if in.Capacidad.LessThan(t.Nivel) {
			return nil, domain.ErrCapacidadExcedida
		}
		t.Capacidad = *in.Capacidad
	}
	if in.UmbralCritico != nil {
		t.UmbralCritico = *in.UmbralCritico
	}
	if in.Ubicacion != nil {
		t.Ubicacion = *in.Ubicacion
	}
	t.UpdatedAt = time.Now()
	if err := uc.repo.Update(t); err != nil {
		return nil, err
	}
	return toTanqueResponse(t), nil
}

// List lista tanques con paginación.
func (uc *TanqueUseCase) List(limit, offset int) (*dto.TanqueListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TanqueResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTanqueResponse(t))
	}
	return &dto.TanqueListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListCriticos lista los tanques en o bajo su umbral de alerta.
func (uc *TanqueUseCase) ListCriticos() ([]dto.TanqueResponse, error) {
	list, err := uc.repo.ListCriticos()
	if err != nil {
		return nil, err
	}
	items := make([]dto.TanqueResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTanqueResponse(t))
	}
	return items, nil
}

// Delete elimina un tanque por ID.
func (uc *TanqueUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toTanqueResponse(t *entity.Tanque) *dto.TanqueResponse {
	if t == nil {
		return nil
	}
	return &dto.TanqueResponse{
		ID:              t.ID,
		Nombre:          t.Nombre,
		TipoCombustible: t.TipoCombustible,
		Capacidad:       t.Capacidad,
		Nivel:           t.Nivel,
		UmbralCritico:   t.UmbralCritico,
		EnNivelCritico:  t.EnNivelCritico(),
		Ubicacion:       t.Ubicacion,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}
