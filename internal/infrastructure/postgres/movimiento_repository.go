package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/flotagest/internal/domain/entity"
	"github.com/tu-usuario/flotagest/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

const movimientoColumns = `id, producto_id, bodega_id, bodega_destino_id, tipo, cantidad,
	responsable, referencia, nota, fecha, fecha_vencimiento, created_at, created_by`

// MovimientoRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Append-only: no hay Update ni Delete.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create persiste un movimiento de almacén.
func (r *MovimientoRepo) Create(m *entity.MovimientoAlmacen) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movimientos_almacen (` + movimientoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	var destino any
	if m.BodegaDestinoID != "" {
		destino = m.BodegaDestinoID
	}
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductoID, m.BodegaID, destino, m.Tipo, m.Cantidad,
		m.Responsable, m.Referencia, m.Nota, m.Fecha, m.FechaVencimiento,
		m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovimientoRepo) GetByID(id string) (*entity.MovimientoAlmacen, error) {
	query := `SELECT ` + movimientoColumns + ` FROM movimientos_almacen WHERE id = $1`
	var m entity.MovimientoAlmacen
	var destino *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProductoID, &m.BodegaID, &destino, &m.Tipo, &m.Cantidad,
		&m.Responsable, &m.Referencia, &m.Nota, &m.Fecha, &m.FechaVencimiento,
		&m.CreatedAt, &m.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	if destino != nil {
		m.BodegaDestinoID = *destino
	}
	return &m, nil
}

// ListByProducto devuelve el historial completo del producto en orden
// cronológico; es la entrada de la reconciliación de custodia.
func (r *MovimientoRepo) ListByProducto(productoID string) ([]*entity.MovimientoAlmacen, error) {
	query := `SELECT ` + movimientoColumns + ` FROM movimientos_almacen
		WHERE producto_id = $1 ORDER BY fecha, created_at`
	return r.scanMany(query, productoID)
}

// ListByBodega lista movimientos de una bodega, opcionalmente filtrados por rango.
func (r *MovimientoRepo) ListByBodega(bodegaID string, from, to *time.Time, limit, offset int) ([]*entity.MovimientoAlmacen, error) {
	query := `SELECT ` + movimientoColumns + ` FROM movimientos_almacen WHERE bodega_id = $1`
	args := []any{bodegaID}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND fecha >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND fecha <= $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY fecha DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	return r.scanMany(query, args...)
}

// ListByRango lista todos los movimientos del rango dado, en orden cronológico.
func (r *MovimientoRepo) ListByRango(from, to time.Time) ([]*entity.MovimientoAlmacen, error) {
	query := `SELECT ` + movimientoColumns + ` FROM movimientos_almacen
		WHERE fecha >= $1 AND fecha <= $2 ORDER BY fecha`
	return r.scanMany(query, from, to)
}

func (r *MovimientoRepo) scanMany(query string, args ...any) ([]*entity.MovimientoAlmacen, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovimientoAlmacen
	for rows.Next() {
		var m entity.MovimientoAlmacen
		var destino *string
		if err := rows.Scan(&m.ID, &m.ProductoID, &m.BodegaID, &destino, &m.Tipo, &m.Cantidad,
			&m.Responsable, &m.Referencia, &m.Nota, &m.Fecha, &m.FechaVencimiento,
			&m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		if destino != nil {
			m.BodegaDestinoID = *destino
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
