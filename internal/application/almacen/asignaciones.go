package almacen

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/flotagest/internal/application/dto"
	"github.com/tu-usuario/flotagest/internal/domain"
	"github.com/tu-usuario/flotagest/internal/domain/custodia"
	"github.com/tu-usuario/flotagest/internal/domain/entity"
	"github.com/tu-usuario/flotagest/internal/domain/repository"
	"github.com/tu-usuario/flotagest/pkg/fechas"
)

// AsignacionesUseCase expone las asignaciones de custodia activas de un
// producto y la acción de devolución. La vista se deriva del libro completo en
// cada lectura: no hay caché ni estado intermedio en el caso de uso.
type AsignacionesUseCase struct {
	movRepo      repository.MovimientoRepository
	productoRepo repository.ProductoRepository
	registrar    *RegistrarMovimientoUseCase
}

// NewAsignacionesUseCase construye el caso de uso.
func NewAsignacionesUseCase(
	movRepo repository.MovimientoRepository,
	productoRepo repository.ProductoRepository,
	registrar *RegistrarMovimientoUseCase,
) *AsignacionesUseCase {
	return &AsignacionesUseCase{movRepo: movRepo, productoRepo: productoRepo, registrar: registrar}
}

// Activas carga el historial del producto y reconcilia las asignaciones
// vigentes. Un producto sin movimientos devuelve la lista vacía (no es error).
func (uc *AsignacionesUseCase) Activas(ctx context.Context, productoID string) (*dto.AsignacionesResponse, error) {
	producto, err := uc.productoRepo.GetByID(productoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}

	historial, err := uc.movRepo.ListByProducto(productoID)
	if err != nil {
		return nil, err
	}
	movs := make([]custodia.Movimiento, 0, len(historial))
	for _, m := range historial {
		movs = append(movs, custodia.DesdeEntidad(m))
	}

	activas := custodia.Reconciliar(productoID, movs, time.Now())

	items := make([]dto.AsignacionDTO, 0, len(activas))
	for _, a := range activas {
		item := dto.AsignacionDTO{
			Responsable:       a.Responsable,
			CantidadPendiente: a.CantidadPendiente,
			Vencida:           a.Vencida,
		}
		if a.UltimaActividad.Valida() {
			item.UltimaActividad = a.UltimaActividad.String()
		}
		if a.PrimerVencimiento.Valida() {
			item.PrimerVencimiento = a.PrimerVencimiento.String()
		}
		items = append(items, item)
	}
	return &dto.AsignacionesResponse{ProductoID: productoID, Asignaciones: items}, nil
}

// Historial devuelve el libro completo de movimientos de un producto en orden
// cronológico, tal como se persistió.
func (uc *AsignacionesUseCase) Historial(ctx context.Context, productoID string) (*dto.MovimientoListResponse, error) {
	producto, err := uc.productoRepo.GetByID(productoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	historial, err := uc.movRepo.ListByProducto(productoID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovimientoResponse, 0, len(historial))
	for _, m := range historial {
		item := dto.MovimientoResponse{
			ID:              m.ID,
			ProductoID:      m.ProductoID,
			BodegaID:        m.BodegaID,
			BodegaDestinoID: m.BodegaDestinoID,
			Tipo:            m.Tipo,
			Cantidad:        m.Cantidad,
			Responsable:     m.Responsable,
			Referencia:      m.Referencia,
			Nota:            m.Nota,
			Fecha:           m.Fecha.Format(fechas.FormatoFechaHora),
		}
		if m.FechaVencimiento != nil {
			item.FechaVencimiento = m.FechaVencimiento.Format(fechas.FormatoFecha)
		}
		items = append(items, item)
	}
	return &dto.MovimientoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: len(items), Total: len(items)},
	}, nil
}

// CountVencidas cuenta las asignaciones vencidas a la fecha dada sobre todos
// los productos retornables. Alimenta la alerta del dashboard.
func (uc *AsignacionesUseCase) CountVencidas(ctx context.Context, ahora time.Time) (int, error) {
	retornables, err := uc.productoRepo.ListRetornables()
	if err != nil {
		return 0, err
	}
	total := 0
	for _, p := range retornables {
		historial, err := uc.movRepo.ListByProducto(p.ID)
		if err != nil {
			return 0, err
		}
		movs := make([]custodia.Movimiento, 0, len(historial))
		for _, m := range historial {
			movs = append(movs, custodia.DesdeEntidad(m))
		}
		for _, a := range custodia.Reconciliar(p.ID, movs, ahora) {
			if a.Vencida {
				total++
			}
		}
	}
	return total, nil
}

// RegistrarDevolucion construye un movimiento retorno con el responsable y la
// cantidad de la asignación seleccionada y lo anexa al libro por la misma vía
// transaccional que cualquier otro movimiento. No toca ninguna vista en
// memoria: el nuevo saldo aparece cuando se vuelve a reconciliar el historial.
func (uc *AsignacionesUseCase) RegistrarDevolucion(ctx context.Context, userID string, in dto.RegistrarDevolucionRequest) error {
	if in.Responsable == "" || !in.Cantidad.Decimal.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	return uc.registrar.Registrar(ctx, MovimientoInput{
		UserID:      userID,
		ProductoID:  in.ProductoID,
		BodegaID:    in.BodegaID,
		Tipo:        entity.MovTipoRetorno,
		Cantidad:    in.Cantidad.Decimal,
		Responsable: in.Responsable,
		Nota:        in.Nota,
	})
}
