package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/flotagest/internal/application/dto"
	"github.com/tu-usuario/flotagest/internal/domain"
	"github.com/tu-usuario/flotagest/internal/domain/entity"
	"github.com/tu-usuario/flotagest/internal/domain/repository"
	"github.com/tu-usuario/flotagest/pkg/fechas"
)

// MantenimientoUseCase casos de uso para órdenes de mantenimiento. Crear una
// orden pone el vehículo en taller; finalizarla lo devuelve a activo.
type MantenimientoUseCase struct {
	repo         repository.MantenimientoRepository
	vehiculoRepo repository.VehiculoRepository
}

// NewMantenimientoUseCase construye el caso de uso.
func NewMantenimientoUseCase(repo repository.MantenimientoRepository, vehiculoRepo repository.VehiculoRepository) *MantenimientoUseCase {
	return &MantenimientoUseCase{repo: repo, vehiculoRepo: vehiculoRepo}
}

// Create crea una orden y marca el vehículo en taller.
func (uc *MantenimientoUseCase) Create(userID string, in dto.CreateMantenimientoRequest) (*dto.MantenimientoResponse, error) {
	if in.VehiculoID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Tipo != entity.MantPreventivo && in.Tipo != entity.MantCorrectivo {
		return nil, domain.ErrInvalidInput
	}
	vehiculo, err := uc.vehiculoRepo.GetByID(in.VehiculoID)
	if err != nil || vehiculo == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	inicio := now
	if f := fechas.Parse(in.FechaInicio); f.Valida() {
		inicio = f.Time()
	}
	m := &entity.Mantenimiento{
		ID:          uuid.New().String(),
		VehiculoID:  in.VehiculoID,
		Tipo:        in.Tipo,
		Estado:      entity.MantEnCurso,
		Descripcion: in.Descripcion,
		Taller:      in.Taller,
		Costo:       in.Costo,
		FechaInicio: inicio,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   userID,
	}
	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}

	vehiculo.Estado = entity.VehiculoEnTaller
	vehiculo.UpdatedAt = now
	if err := uc.vehiculoRepo.Update(vehiculo); err != nil {
		return nil, err
	}
	return toMantenimientoResponse(m), nil
}

// Update actualiza una orden; al pasar a finalizado el vehículo vuelve a activo.
func (uc *MantenimientoUseCase) Update(id string, in dto.UpdateMantenimientoRequest) (*dto.MantenimientoResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	if in.Descripcion != nil {
		m.Descripcion = *in.Descripcion
	}
	if in.Taller != nil {
		m.Taller = *in.Taller
	}
	if in.Costo != nil {
		m.Costo = *in.Costo
	}
	if in.FechaFin != nil {
		if f := fechas.Parse(*in.FechaFin); f.Valida() {
			t := f.Time()
			m.FechaFin = &t
		}
	}
	finaliza := false
	if in.Estado != nil {
		switch *in.Estado {
		case entity.MantProgramado, entity.MantEnCurso:
			m.Estado = *in.Estado
		case entity.MantFinalizado:
			m.Estado = entity.MantFinalizado
			finaliza = true
			if m.FechaFin == nil {
				t := time.Now()
				m.FechaFin = &t
			}
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(m); err != nil {
		return nil, err
	}

	if finaliza {
		if vehiculo, err := uc.vehiculoRepo.GetByID(m.VehiculoID); err == nil && vehiculo != nil {
			vehiculo.Estado = entity.VehiculoActivo
			vehiculo.UpdatedAt = time.Now()
			if err := uc.vehiculoRepo.Update(vehiculo); err != nil {
				return nil, err
			}
		}
	}
	return toMantenimientoResponse(m), nil
}

// GetByID obtiene una orden por ID.
func (uc *MantenimientoUseCase) GetByID(id string) (*dto.MantenimientoResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	return toMantenimientoResponse(m), nil
}

// List lista órdenes con paginación, opcionalmente por vehículo.
func (uc *MantenimientoUseCase) List(vehiculoID string, limit, offset int) (*dto.MantenimientoListResponse, error) {
	var list []*entity.Mantenimiento
	var err error
	if vehiculoID != "" {
		list, err = uc.repo.ListByVehiculo(vehiculoID, limit, offset)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.MantenimientoResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMantenimientoResponse(m))
	}
	return &dto.MantenimientoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toMantenimientoResponse(m *entity.Mantenimiento) *dto.MantenimientoResponse {
	if m == nil {
		return nil
	}
	return &dto.MantenimientoResponse{
		ID:          m.ID,
		VehiculoID:  m.VehiculoID,
		Tipo:        m.Tipo,
		Estado:      m.Estado,
		Descripcion: m.Descripcion,
		Taller:      m.Taller,
		Costo:       m.Costo,
		FechaInicio: m.FechaInicio,
		FechaFin:    m.FechaFin,
		CreatedAt:   m.CreatedAt,
	}
}
