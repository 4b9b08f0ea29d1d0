package combustible

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/flotagest/internal/application/dto"
	"github.com/tu-usuario/flotagest/internal/domain"
	"github.com/tu-usuario/flotagest/internal/domain/entity"
	"github.com/tu-usuario/flotagest/internal/domain/repository"
	"github.com/tu-usuario/flotagest/pkg/fechas"
)

// ConsultarConsumosUseCase consultas de solo lectura sobre el historial de
// cargas de combustible.
type ConsultarConsumosUseCase struct {
	consumoRepo  repository.ConsumoRepository
	vehiculoRepo repository.VehiculoRepository
}

// NewConsultarConsumosUseCase construye el caso de uso.
func NewConsultarConsumosUseCase(consumoRepo repository.ConsumoRepository, vehiculoRepo repository.VehiculoRepository) *ConsultarConsumosUseCase {
	return &ConsultarConsumosUseCase{consumoRepo: consumoRepo, vehiculoRepo: vehiculoRepo}
}

// ListByVehiculo devuelve el historial de un vehículo, opcionalmente acotado
// por fechas en cualquiera de los formatos de pkg/fechas.
func (uc *ConsultarConsumosUseCase) ListByVehiculo(ctx context.Context, vehiculoID, desde, hasta string, limit, offset int) (*dto.ConsumoListResponse, error) {
	vehiculo, err := uc.vehiculoRepo.GetByID(vehiculoID)
	if err != nil {
		return nil, err
	}
	if vehiculo == nil {
		return nil, domain.ErrNotFound
	}

	var from, to *time.Time
	if desde != "" {
		f := fechas.Parse(desde)
		if !f.Valida() {
			return nil, fmt.Errorf("%w: fecha desde %q", domain.ErrInvalidInput, desde)
		}
		t := f.Time()
		from = &t
	}
	if hasta != "" {
		h := fechas.Parse(hasta)
		if !h.Valida() {
			return nil, fmt.Errorf("%w: fecha hasta %q", domain.ErrInvalidInput, hasta)
		}
		// El límite superior es inclusivo hasta el fin del día.
		ht := h.Time()
		ht = time.Date(ht.Year(), ht.Month(), ht.Day(), 23, 59, 59, 0, ht.Location())
		to = &ht
	}

	consumos, err := uc.consumoRepo.ListByVehiculo(vehiculoID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ConsumoResponse, 0, len(consumos))
	for _, c := range consumos {
		items = append(items, ToConsumoResponse(c))
	}
	return &dto.ConsumoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ToConsumoResponse mapea la entidad al DTO de salida.
func ToConsumoResponse(c *entity.ConsumoCombustible) dto.ConsumoResponse {
	return dto.ConsumoResponse{
		ID:         c.ID,
		VehiculoID: c.VehiculoID,
		TanqueID:   c.TanqueID,
		Litros:     c.Litros,
		Odometro:   c.Odometro,
		Conductor:  c.Conductor,
		Nota:       c.Nota,
		Fecha:      c.Fecha.Format(fechas.FormatoFechaHora),
	}
}
