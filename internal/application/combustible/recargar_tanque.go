package combustible

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/flotagest/internal/domain"
	"github.com/tu-usuario/flotagest/internal/domain/entity"
	"github.com/tu-usuario/flotagest/internal/domain/repository"
)

// RecargarTanqueUseCase registra el ingreso de combustible a un tanque
// (descarga de un carrotanque proveedor) con bloqueo de fila.
type RecargarTanqueUseCase struct {
	txRunner   TxRunner
	tanqueRepo repository.TanqueRepository
}

// NewRecargarTanqueUseCase construye el caso de uso.
func NewRecargarTanqueUseCase(txRunner TxRunner, tanqueRepo repository.TanqueRepository) *RecargarTanqueUseCase {
	return &RecargarTanqueUseCase{txRunner: txRunner, tanqueRepo: tanqueRepo}
}

// Recargar suma litros al tanque. La recarga nunca puede exceder la capacidad.
func (uc *RecargarTanqueUseCase) Recargar(ctx context.Context, tanqueID string, litros decimal.Decimal) (*entity.Tanque, error) {
	if tanqueID == "" || !litros.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.tanqueRepo.GetByID(tanqueID)
	if err != nil || existente == nil {
		return nil, domain.ErrNotFound
	}

	var resultado *entity.Tanque
	err = uc.txRunner.RunCombustible(ctx, func(
		_ repository.ConsumoRepository,
		tanqueRepo repository.TanqueRepository,
		_ repository.VehiculoRepository,
	) error {
		t, err := tanqueRepo.GetForUpdate(tanqueID)
		if err != nil {
			return err
		}
		if t.Nivel.Add(litros).GreaterThan(t.Capacidad) {
			return domain.ErrCapacidadExcedida
		}
		t.Nivel = t.Nivel.Add(litros)
		t.UpdatedAt = time.Now()
		if err := tanqueRepo.UpdateNivel(t); err != nil {
			return err
		}
		resultado = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resultado, nil
}
