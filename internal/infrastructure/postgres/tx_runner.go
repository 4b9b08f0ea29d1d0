package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/flotagest/internal/application/almacen"
	"github.com/tu-usuario/flotagest/internal/application/combustible"
	"github.com/tu-usuario/flotagest/internal/domain/repository"
)

// Ensure TxRunner implements almacen.TxRunner and combustible.TxRunner.
var _ almacen.TxRunner = (*TxRunner)(nil)
var _ combustible.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción con los repos del libro de almacén y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	stockRepo repository.StockRepository,
	productoRepo repository.ProductoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewMovimientoRepository(tx)
	stockRepo := NewStockRepository(tx)
	productoRepo := NewProductoRepository(tx)

	if err := fn(movRepo, stockRepo, productoRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCombustible inicia una transacción con los repos del subsistema de
// combustible (para registrar consumos y recargas).
func (r *TxRunner) RunCombustible(ctx context.Context, fn func(
	consumoRepo repository.ConsumoRepository,
	tanqueRepo repository.TanqueRepository,
	vehiculoRepo repository.VehiculoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	consumoRepo := NewConsumoRepository(tx)
	tanqueRepo := NewTanqueRepository(tx)
	vehiculoRepo := NewVehiculoRepository(tx)

	if err := fn(consumoRepo, tanqueRepo, vehiculoRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
