package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/flotagest/internal/domain/entity"
	"github.com/tu-usuario/flotagest/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual de un producto en una bodega.
func (r *StockRepo) Get(productoID, bodegaID string) (*entity.StockBodega, error) {
	query := `
		SELECT producto_id, bodega_id, cantidad, updated_at
		FROM stock_bodegas WHERE producto_id = $1 AND bodega_id = $2`
	return r.scanOne(query, productoID, bodegaID)
}

// GetForUpdate obtiene el stock y bloquea la fila para update (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(productoID, bodegaID string) (*entity.StockBodega, error) {
	query := `
		SELECT producto_id, bodega_id, cantidad, updated_at
		FROM stock_bodegas WHERE producto_id = $1 AND bodega_id = $2
		FOR UPDATE`
	return r.scanOne(query, productoID, bodegaID)
}

func (r *StockRepo) scanOne(query, productoID, bodegaID string) (*entity.StockBodega, error) {
	var s entity.StockBodega
	err := r.q.QueryRow(context.Background(), query, productoID, bodegaID).Scan(
		&s.ProductoID, &s.BodegaID, &s.Cantidad, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockBodega{ProductoID: productoID, BodegaID: bodegaID, Cantidad: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad en stock (por producto y bodega).
func (r *StockRepo) Upsert(s *entity.StockBodega) error {
	query := `
		INSERT INTO stock_bodegas (producto_id, bodega_id, cantidad, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (producto_id, bodega_id)
		DO UPDATE SET cantidad = EXCLUDED.cantidad, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, s.ProductoID, s.BodegaID, s.Cantidad)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// ListByBodega lista el stock de todos los productos de una bodega.
func (r *StockRepo) ListByBodega(bodegaID string) ([]*entity.StockBodega, error) {
	query := `
		SELECT producto_id, bodega_id, cantidad, updated_at
		FROM stock_bodegas WHERE bodega_id = $1 ORDER BY producto_id`
	rows, err := r.q.Query(context.Background(), query, bodegaID)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockBodega
	for rows.Next() {
		var s entity.StockBodega
		if err := rows.Scan(&s.ProductoID, &s.BodegaID, &s.Cantidad, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
