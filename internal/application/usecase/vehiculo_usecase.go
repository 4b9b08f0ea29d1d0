package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/flotagest/internal/application/dto"
	"github.com/tu-usuario/flotagest/internal/domain"
	"github.com/tu-usuario/flotagest/internal/domain/entity"
	"github.com/tu-usuario/flotagest/internal/domain/repository"
)

// VehiculoUseCase casos de uso CRUD para vehículos de la flota.
type VehiculoUseCase struct {
	repo repository.VehiculoRepository
}

// NewVehiculoUseCase construye el caso de uso.
func NewVehiculoUseCase(repo repository.VehiculoRepository) *VehiculoUseCase {
	return &VehiculoUseCase{repo: repo}
}

// Create crea un vehículo nuevo. La placa es única.
func (uc *VehiculoUseCase) Create(in dto.CreateVehiculoRequest) (*dto.VehiculoResponse, error) {
	if in.Placa == "" || in.TipoCombustible == "" {
		return nil, domain.ErrInvalidInput
	}
	existente, _ := uc.repo.GetByPlaca(in.Placa)
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	v := &entity.Vehiculo{
		ID:              uuid.New().String(),
		Placa:           in.Placa,
		Marca:           in.Marca,
		Modelo:          in.Modelo,
		Anio:            in.Anio,
		TipoCombustible: in.TipoCombustible,
		Odometro:        in.Odometro,
		Estado:          entity.VehiculoActivo,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(v); err != nil {
		return nil, err
	}
	return toVehiculoResponse(v), nil
}

// GetByID obtiene un vehículo por ID.
func (uc *VehiculoUseCase) GetByID(id string) (*dto.VehiculoResponse, error) {
	v, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	return toVehiculoResponse(v), nil
}

// Update actualiza un vehículo. El odómetro solo puede avanzar.
func (uc *VehiculoUseCase) Update(id string, in dto.UpdateVehiculoRequest) (*dto.VehiculoResponse, error) {
	v, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	if in.Marca != nil {
		v.Marca = *in.Marca
	}
	if in.Modelo != nil {
		v.Modelo = *in.Modelo
	}
	if in.Anio != nil {
		v.Anio = *in.Anio
	}
	if in.Estado != nil {
		v.Estado = *in.Estado
	}
	if in.Odometro != nil {
		if in.Odometro.LessThan(v.Odometro) {
			return nil, domain.ErrOdometroRetrocede
		}
		v.Odometro = *in.Odometro
	}
	v.UpdatedAt = time.Now()
	if err := uc.repo.Update(v); err != nil {
		return nil, err
	}
	return toVehiculoResponse(v), nil
}

// List lista vehículos con paginación.
func (uc *VehiculoUseCase) List(limit, offset int) (*dto.VehiculoListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VehiculoResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVehiculoResponse(v))
	}
	return &dto.VehiculoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un vehículo por ID.
func (uc *VehiculoUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toVehiculoResponse(v *entity.Vehiculo) *dto.VehiculoResponse {
	if v == nil {
		return nil
	}
	return &dto.VehiculoResponse{
		ID:              v.ID,
		Placa:           v.Placa,
		Marca:           v.Marca,
		Modelo:          v.Modelo,
		Anio:            v.Anio,
		TipoCombustible: v.TipoCombustible,
		Odometro:        v.Odometro,
		Estado:          v.Estado,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}
