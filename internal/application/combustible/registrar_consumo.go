// Package combustible contiene los casos de uso del subsistema de combustible:
// consumos de vehículos contra tanques y recargas de tanques.
package combustible

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/flotagest/internal/application/dto"
	"github.com/tu-usuario/flotagest/internal/domain"
	"github.com/tu-usuario/flotagest/internal/domain/entity"
	"github.com/tu-usuario/flotagest/internal/domain/repository"
	"github.com/tu-usuario/flotagest/pkg/fechas"
)

// RegistrarConsumoUseCase registra una carga de combustible de forma
// transaccional: bloquea la fila del tanque, verifica nivel, descuenta y deja
// el registro de consumo con la lectura de odómetro.
type RegistrarConsumoUseCase struct {
	txRunner     TxRunner
	vehiculoRepo repository.VehiculoRepository
	tanqueRepo   repository.TanqueRepository
}

// NewRegistrarConsumoUseCase construye el caso de uso.
func NewRegistrarConsumoUseCase(
	txRunner TxRunner,
	vehiculoRepo repository.VehiculoRepository,
	tanqueRepo repository.TanqueRepository,
) *RegistrarConsumoUseCase {
	return &RegistrarConsumoUseCase{txRunner: txRunner, vehiculoRepo: vehiculoRepo, tanqueRepo: tanqueRepo}
}

// ConsumoInput entrada para registrar un consumo.
type ConsumoInput struct {
	UserID     string
	VehiculoID string
	TanqueID   string
	Litros     decimal.Decimal
	Odometro   decimal.Decimal
	Conductor  string
	Nota       string
	Fecha      time.Time // cero = ahora
}

// Registrar valida vehículo y tanque, y ejecuta el descuento + registro en una
// sola transacción. El odómetro del vehículo nunca retrocede.
func (uc *RegistrarConsumoUseCase) Registrar(ctx context.Context, input ConsumoInput) (*entity.ConsumoCombustible, error) {
	if input.VehiculoID == "" || input.TanqueID == "" || !input.Litros.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	vehiculo, err := uc.vehiculoRepo.GetByID(input.VehiculoID)
	if err != nil || vehiculo == nil {
		return nil, domain.ErrNotFound
	}
	tanque, err := uc.tanqueRepo.GetByID(input.TanqueID)
	if err != nil || tanque == nil {
		return nil, domain.ErrNotFound
	}
	if tanque.TipoCombustible != vehiculo.TipoCombustible {
		return nil, domain.ErrInvalidInput
	}
	if input.Odometro.GreaterThan(decimal.Zero) && input.Odometro.LessThan(vehiculo.Odometro) {
		return nil, domain.ErrOdometroRetrocede
	}

	now := time.Now()
	if input.Fecha.IsZero() {
		input.Fecha = now
	}

	consumo := &entity.ConsumoCombustible{
		ID:         uuid.New().String(),
		VehiculoID: input.VehiculoID,
		TanqueID:   input.TanqueID,
		Litros:     input.Litros,
		Odometro:   input.Odometro,
		Conductor:  input.Conductor,
		Nota:       input.Nota,
		Fecha:      input.Fecha,
		CreatedAt:  now,
		CreatedBy:  input.UserID,
	}

	err = uc.txRunner.RunCombustible(ctx, func(
		consumoRepo repository.ConsumoRepository,
		tanqueRepo repository.TanqueRepository,
		vehiculoRepo repository.VehiculoRepository,
	) error {
		t, err := tanqueRepo.GetForUpdate(input.TanqueID)
		if err != nil {
			return err
		}
		if t.Nivel.LessThan(input.Litros) {
			return domain.ErrNivelInsuficiente
		}
		t.Nivel = t.Nivel.Sub(input.Litros)
		t.UpdatedAt = now
		if err := tanqueRepo.UpdateNivel(t); err != nil {
			return err
		}
		if input.Odometro.GreaterThan(vehiculo.Odometro) {
			vehiculo.Odometro = input.Odometro
			vehiculo.UpdatedAt = now
			if err := vehiculoRepo.Update(vehiculo); err != nil {
				return err
			}
		}
		return consumoRepo.Create(consumo)
	})
	if err != nil {
		return nil, err
	}
	return consumo, nil
}

// RegistrarFromRequest adapta el request HTTP: normaliza la fecha heterogénea
// con pkg/fechas y coerce cantidades malformadas a cero (que luego falla la
// validación de litros > 0 sin tumbar nada más).
func (uc *RegistrarConsumoUseCase) RegistrarFromRequest(ctx context.Context, userID string, in dto.RegistrarConsumoRequest) (*entity.ConsumoCombustible, error) {
	input := ConsumoInput{
		UserID:     userID,
		VehiculoID: in.VehiculoID,
		TanqueID:   in.TanqueID,
		Litros:     in.Litros.Decimal,
		Odometro:   in.Odometro.Decimal,
		Conductor:  in.Conductor,
		Nota:       in.Nota,
	}
	if f := fechas.Parse(in.Fecha); f.Valida() {
		input.Fecha = f.Time()
	}
	return uc.Registrar(ctx, input)
}
