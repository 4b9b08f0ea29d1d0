package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/flotagest/internal/application/analytics"
	"github.com/tu-usuario/flotagest/internal/domain/entity"
	"github.com/tu-usuario/flotagest/internal/domain/repository"
)

type memAnalyticsRepo struct {
	litrosHoy decimal.Decimal
	cargasHoy int
	litrosMes decimal.Decimal
	cargasMes int
	top       []repository.ConsumoVehiculoResult
	err       error
}

func (r *memAnalyticsRepo) GetConsumoMetrics(_ context.Context, start, _ time.Time) (decimal.Decimal, int, error) {
	if r.err != nil {
		return decimal.Zero, 0, r.err
	}
	// El rango del día empieza hoy; el del mes, el día 1.
	if start.Day() == time.Now().Day() && time.Now().Day() != 1 {
		return r.litrosHoy, r.cargasHoy, nil
	}
	return r.litrosMes, r.cargasMes, nil
}

func (r *memAnalyticsRepo) GetTopVehiculos(context.Context, time.Time, time.Time, int) ([]repository.ConsumoVehiculoResult, error) {
	return r.top, r.err
}

type memTanqueRepo struct{ criticos []*entity.Tanque }

func (r *memTanqueRepo) Create(*entity.Tanque) error                { return nil }
func (r *memTanqueRepo) GetByID(string) (*entity.Tanque, error)     { return nil, nil }
func (r *memTanqueRepo) GetForUpdate(string) (*entity.Tanque, error) { return nil, nil }
func (r *memTanqueRepo) List(int, int) ([]*entity.Tanque, error)    { return nil, nil }
func (r *memTanqueRepo) ListCriticos() ([]*entity.Tanque, error)    { return r.criticos, nil }
func (r *memTanqueRepo) Update(*entity.Tanque) error                { return nil }
func (r *memTanqueRepo) UpdateNivel(*entity.Tanque) error           { return nil }
func (r *memTanqueRepo) Delete(string) error                        { return nil }

type memMantenimientoRepo struct{ enCurso int }

func (r *memMantenimientoRepo) Create(*entity.Mantenimiento) error            { return nil }
func (r *memMantenimientoRepo) GetByID(string) (*entity.Mantenimiento, error) { return nil, nil }
func (r *memMantenimientoRepo) ListByVehiculo(string, int, int) ([]*entity.Mantenimiento, error) {
	return nil, nil
}
func (r *memMantenimientoRepo) List(int, int) ([]*entity.Mantenimiento, error) { return nil, nil }
func (r *memMantenimientoRepo) Update(*entity.Mantenimiento) error             { return nil }
func (r *memMantenimientoRepo) CountEnCurso() (int, error)                     { return r.enCurso, nil }

type stubVencidas struct {
	total int
	err   error
}

func (s *stubVencidas) CountVencidas(context.Context, time.Time) (int, error) {
	return s.total, s.err
}

func TestGetSummary_AgregaKPIsYAlertas(t *testing.T) {
	uc := analytics.NewDashboardUseCase(
		&memAnalyticsRepo{
			litrosHoy: decimal.NewFromFloat(120.456),
			cargasHoy: 3,
			litrosMes: decimal.NewFromInt(2500),
			cargasMes: 48,
			top: []repository.ConsumoVehiculoResult{
				{VehiculoID: "vh-1", Placa: "ABC123", Litros: decimal.NewFromFloat(400.129), Cargas: 10},
				{VehiculoID: "vh-2", Placa: "DEF456", Litros: decimal.NewFromInt(300), Cargas: 8},
			},
		},
		&memTanqueRepo{criticos: []*entity.Tanque{{ID: "tq-1"}}},
		&memMantenimientoRepo{enCurso: 2},
		&stubVencidas{total: 4},
	)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 48, out.CargasMes)
	assert.True(t, out.LitrosMes.Equal(decimal.NewFromInt(2500)))
	assert.Equal(t, 1, out.TanquesCriticos)
	assert.Equal(t, 2, out.VehiculosEnTaller)
	assert.Equal(t, 4, out.AsignacionesVencidas)
	assert.NotEmpty(t, out.DateLabel)

	require.Len(t, out.TopVehiculos, 2)
	assert.Equal(t, "ABC123", out.TopVehiculos[0].Placa)
	assert.True(t, out.TopVehiculos[0].Litros.Equal(decimal.NewFromFloat(400.13)),
		"los litros del top deben redondearse a 2 decimales: %s", out.TopVehiculos[0].Litros)
}

func TestGetSummary_PropagaErrorDeConsulta(t *testing.T) {
	uc := analytics.NewDashboardUseCase(
		&memAnalyticsRepo{err: errors.New("db caída")},
		&memTanqueRepo{},
		&memMantenimientoRepo{},
		&stubVencidas{},
	)

	_, err := uc.GetSummary(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dashboard:")
}

func TestGetSummary_PropagaErrorDeVencidas(t *testing.T) {
	uc := analytics.NewDashboardUseCase(
		&memAnalyticsRepo{},
		&memTanqueRepo{},
		&memMantenimientoRepo{},
		&stubVencidas{err: errors.New("reconciliación fallida")},
	)

	_, err := uc.GetSummary(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "custodias vencidas")
}
