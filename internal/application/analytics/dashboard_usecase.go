// Package analytics contiene los casos de uso de lectura para los KPIs
// operativos del dashboard de flota.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/flotagest/internal/application/dto"
	"github.com/tu-usuario/flotagest/internal/domain/repository"
)

const dashboardTopVehiculos = 5 // número de vehículos en el widget del dashboard

// ContadorVencidas cuenta asignaciones de custodia vencidas a una fecha.
// Lo implementa el caso de uso de asignaciones de almacén.
type ContadorVencidas interface {
	CountVencidas(ctx context.Context, ahora time.Time) (int, error)
}

// DashboardUseCase genera el resumen operativo del día y del mes en curso.
//
// Los consumos agregados salen de AnalyticsRepository (consultas read-only);
// las alertas salen de los repositorios de tanques y mantenimientos y del
// contador de custodias vencidas.
type DashboardUseCase struct {
	analyticsRepo     repository.AnalyticsRepository
	tanqueRepo        repository.TanqueRepository
	mantenimientoRepo repository.MantenimientoRepository
	vencidas          ContadorVencidas
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	analyticsRepo repository.AnalyticsRepository,
	tanqueRepo repository.TanqueRepository,
	mantenimientoRepo repository.MantenimientoRepository,
	vencidas ContadorVencidas,
) *DashboardUseCase {
	return &DashboardUseCase{
		analyticsRepo:     analyticsRepo,
		tanqueRepo:        tanqueRepo,
		mantenimientoRepo: mantenimientoRepo,
		vencidas:          vencidas,
	}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cinco consultas en paralelo:
//  1. GetConsumoMetrics(hoy)          → LitrosHoy + CargasHoy
//  2. GetConsumoMetrics(mes)          → LitrosMes + CargasMes
//  3. GetTopVehiculos(mes, top 5)     → TopVehiculos
//  4. ListCriticos + CountEnCurso     → TanquesCriticos + VehiculosEnTaller
//  5. CountVencidas(ahora)            → AsignacionesVencidas
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// Hoy: 00:00:00.000 – 23:59:59.999
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)

	// Mes en curso: día 1 a las 00:00 – hoy a las 23:59:59
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := todayEnd

	type consumoResult struct {
		litros decimal.Decimal
		cargas int
		err    error
	}
	type topResult struct {
		vehiculos []repository.ConsumoVehiculoResult
		err       error
	}
	type alertasResult struct {
		criticos int
		enTaller int
		err      error
	}
	type vencidasResult struct {
		total int
		err   error
	}

	todayCh := make(chan consumoResult, 1)
	monthCh := make(chan consumoResult, 1)
	topCh := make(chan topResult, 1)
	alertasCh := make(chan alertasResult, 1)
	vencidasCh := make(chan vencidasResult, 1)

	go func() {
		litros, cargas, err := uc.analyticsRepo.GetConsumoMetrics(ctx, todayStart, todayEnd)
		todayCh <- consumoResult{litros, cargas, err}
	}()
	go func() {
		litros, cargas, err := uc.analyticsRepo.GetConsumoMetrics(ctx, monthStart, monthEnd)
		monthCh <- consumoResult{litros, cargas, err}
	}()
	go func() {
		vehiculos, err := uc.analyticsRepo.GetTopVehiculos(ctx, monthStart, monthEnd, dashboardTopVehiculos)
		topCh <- topResult{vehiculos, err}
	}()
	go func() {
		criticos, err := uc.tanqueRepo.ListCriticos()
		if err != nil {
			alertasCh <- alertasResult{err: err}
			return
		}
		enTaller, err := uc.mantenimientoRepo.CountEnCurso()
		alertasCh <- alertasResult{criticos: len(criticos), enTaller: enTaller, err: err}
	}()
	go func() {
		total, err := uc.vencidas.CountVencidas(ctx, now)
		vencidasCh <- vencidasResult{total, err}
	}()

	today := <-todayCh
	month := <-monthCh
	top := <-topCh
	alertas := <-alertasCh
	vencidas := <-vencidasCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: consumo de hoy: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: consumo del mes: %w", month.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top vehículos: %w", top.err)
	}
	if alertas.err != nil {
		return nil, fmt.Errorf("dashboard: alertas operativas: %w", alertas.err)
	}
	if vencidas.err != nil {
		return nil, fmt.Errorf("dashboard: custodias vencidas: %w", vencidas.err)
	}

	topVehiculos := make([]dto.TopVehiculoDTO, 0, len(top.vehiculos))
	for _, v := range top.vehiculos {
		topVehiculos = append(topVehiculos, dto.TopVehiculoDTO{
			VehiculoID: v.VehiculoID,
			Placa:      v.Placa,
			Litros:     v.Litros.Round(2),
			Cargas:     v.Cargas,
		})
	}

	return &dto.DashboardSummaryDTO{
		LitrosHoy:            today.litros.Round(2),
		CargasHoy:            today.cargas,
		LitrosMes:            month.litros.Round(2),
		CargasMes:            month.cargas,
		TopVehiculos:         topVehiculos,
		TanquesCriticos:      alertas.criticos,
		AsignacionesVencidas: vencidas.total,
		VehiculosEnTaller:    alertas.enTaller,
		DateLabel:            monthLabel(now),
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Agosto 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
