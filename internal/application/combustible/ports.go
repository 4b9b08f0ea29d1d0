package combustible

import (
	"context"

	"github.com/tu-usuario/flotagest/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. El descuento del nivel del tanque y el registro
// del consumo viajan en la misma transacción.
type TxRunner interface {
	RunCombustible(ctx context.Context, fn func(
		consumoRepo repository.ConsumoRepository,
		tanqueRepo repository.TanqueRepository,
		vehiculoRepo repository.VehiculoRepository,
	) error) error
}
