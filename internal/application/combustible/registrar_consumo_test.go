package combustible_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/flotagest/internal/application/combustible"
	"github.com/tu-usuario/flotagest/internal/domain"
	"github.com/tu-usuario/flotagest/internal/domain/entity"
	"github.com/tu-usuario/flotagest/internal/domain/repository"
)

type memConsumoRepo struct{ consumos []*entity.ConsumoCombustible }

func (r *memConsumoRepo) Create(c *entity.ConsumoCombustible) error {
	r.consumos = append(r.consumos, c)
	return nil
}
func (r *memConsumoRepo) GetByID(string) (*entity.ConsumoCombustible, error) { return nil, nil }
func (r *memConsumoRepo) ListByVehiculo(string, *time.Time, *time.Time, int, int) ([]*entity.ConsumoCombustible, error) {
	return r.consumos, nil
}
func (r *memConsumoRepo) ListByRango(time.Time, time.Time) ([]*entity.ConsumoCombustible, error) {
	return r.consumos, nil
}

type memTanqueRepo struct{ tanques map[string]*entity.Tanque }

func (r *memTanqueRepo) Create(t *entity.Tanque) error              { r.tanques[t.ID] = t; return nil }
func (r *memTanqueRepo) GetByID(id string) (*entity.Tanque, error)  { return r.tanques[id], nil }
func (r *memTanqueRepo) GetForUpdate(id string) (*entity.Tanque, error) { return r.tanques[id], nil }
func (r *memTanqueRepo) List(int, int) ([]*entity.Tanque, error)    { return nil, nil }
func (r *memTanqueRepo) ListCriticos() ([]*entity.Tanque, error)    { return nil, nil }
func (r *memTanqueRepo) Update(*entity.Tanque) error                { return nil }
func (r *memTanqueRepo) UpdateNivel(*entity.Tanque) error           { return nil }
func (r *memTanqueRepo) Delete(string) error                        { return nil }

type memVehiculoRepo struct{ vehiculos map[string]*entity.Vehiculo }

func (r *memVehiculoRepo) Create(v *entity.Vehiculo) error             { r.vehiculos[v.ID] = v; return nil }
func (r *memVehiculoRepo) GetByID(id string) (*entity.Vehiculo, error) { return r.vehiculos[id], nil }
func (r *memVehiculoRepo) GetByPlaca(string) (*entity.Vehiculo, error) { return nil, nil }
func (r *memVehiculoRepo) List(int, int) ([]*entity.Vehiculo, error)   { return nil, nil }
func (r *memVehiculoRepo) Update(*entity.Vehiculo) error               { return nil }
func (r *memVehiculoRepo) Delete(string) error                         { return nil }

type memTxRunner struct {
	consumos  *memConsumoRepo
	tanques   *memTanqueRepo
	vehiculos *memVehiculoRepo
}

func (r *memTxRunner) RunCombustible(_ context.Context, fn func(
	repository.ConsumoRepository,
	repository.TanqueRepository,
	repository.VehiculoRepository,
) error) error {
	return fn(r.consumos, r.tanques, r.vehiculos)
}

func nuevoEntorno(t *testing.T) (*combustible.RegistrarConsumoUseCase, *combustible.RecargarTanqueUseCase, *memTxRunner) {
	t.Helper()
	tx := &memTxRunner{
		consumos: &memConsumoRepo{},
		tanques: &memTanqueRepo{tanques: map[string]*entity.Tanque{
			"tq-1": {ID: "tq-1", Nombre: "Principal", TipoCombustible: entity.CombustibleDiesel,
				Capacidad: decimal.NewFromInt(1000), Nivel: decimal.NewFromInt(500), UmbralCritico: decimal.NewFromInt(100)},
		}},
		vehiculos: &memVehiculoRepo{vehiculos: map[string]*entity.Vehiculo{
			"vh-1": {ID: "vh-1", Placa: "ABC123", TipoCombustible: entity.CombustibleDiesel,
				Odometro: decimal.NewFromInt(50000), Estado: entity.VehiculoActivo},
		}},
	}
	consumo := combustible.NewRegistrarConsumoUseCase(tx, tx.vehiculos, tx.tanques)
	recarga := combustible.NewRecargarTanqueUseCase(tx, tx.tanques)
	return consumo, recarga, tx
}

// Consumo normal: descuenta el tanque, avanza odómetro y deja registro.
func TestRegistrarConsumo_OK(t *testing.T) {
	consumoUC, _, tx := nuevoEntorno(t)

	c, err := consumoUC.Registrar(context.Background(), combustible.ConsumoInput{
		VehiculoID: "vh-1", TanqueID: "tq-1",
		Litros: decimal.NewFromInt(40), Odometro: decimal.NewFromInt(50300),
	})
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.True(t, tx.tanques.tanques["tq-1"].Nivel.Equal(decimal.NewFromInt(460)))
	assert.True(t, tx.vehiculos.vehiculos["vh-1"].Odometro.Equal(decimal.NewFromInt(50300)))
	assert.Len(t, tx.consumos.consumos, 1)
}

// Tanque sin nivel suficiente rechaza el consumo.
func TestRegistrarConsumo_NivelInsuficiente(t *testing.T) {
	consumoUC, _, tx := nuevoEntorno(t)

	_, err := consumoUC.Registrar(context.Background(), combustible.ConsumoInput{
		VehiculoID: "vh-1", TanqueID: "tq-1", Litros: decimal.NewFromInt(600),
	})
	assert.ErrorIs(t, err, domain.ErrNivelInsuficiente)
	assert.Empty(t, tx.consumos.consumos)
}

// El odómetro reportado no puede retroceder.
func TestRegistrarConsumo_OdometroRetrocede(t *testing.T) {
	consumoUC, _, _ := nuevoEntorno(t)

	_, err := consumoUC.Registrar(context.Background(), combustible.ConsumoInput{
		VehiculoID: "vh-1", TanqueID: "tq-1",
		Litros: decimal.NewFromInt(10), Odometro: decimal.NewFromInt(49000),
	})
	assert.ErrorIs(t, err, domain.ErrOdometroRetrocede)
}

// Vehículo a gasolina no carga de un tanque diesel.
func TestRegistrarConsumo_TipoCombustibleDistinto(t *testing.T) {
	consumoUC, _, tx := nuevoEntorno(t)
	tx.vehiculos.vehiculos["vh-1"].TipoCombustible = entity.CombustibleGasolina

	_, err := consumoUC.Registrar(context.Background(), combustible.ConsumoInput{
		VehiculoID: "vh-1", TanqueID: "tq-1", Litros: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Recarga normal y recarga que excede la capacidad.
func TestRecargarTanque(t *testing.T) {
	_, recargaUC, tx := nuevoEntorno(t)
	ctx := context.Background()

	tq, err := recargaUC.Recargar(ctx, "tq-1", decimal.NewFromInt(300))
	require.NoError(t, err)
	assert.True(t, tq.Nivel.Equal(decimal.NewFromInt(800)))

	_, err = recargaUC.Recargar(ctx, "tq-1", decimal.NewFromInt(500))
	assert.ErrorIs(t, err, domain.ErrCapacidadExcedida)
	assert.True(t, tx.tanques.tanques["tq-1"].Nivel.Equal(decimal.NewFromInt(800)))
}
