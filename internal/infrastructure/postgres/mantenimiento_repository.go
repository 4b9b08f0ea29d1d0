package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/flotagest/internal/domain/entity"
	"github.com/tu-usuario/flotagest/internal/domain/repository"
)

var _ repository.MantenimientoRepository = (*MantenimientoRepo)(nil)

const mantenimientoColumns = `id, vehiculo_id, tipo, estado, descripcion, taller, costo,
	fecha_inicio, fecha_fin, created_at, updated_at, created_by`

// MantenimientoRepo implementación de MantenimientoRepository (usable con pool o tx).
type MantenimientoRepo struct {
	q Querier
}

// NewMantenimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMantenimientoRepository(q Querier) *MantenimientoRepo {
	return &MantenimientoRepo{q: q}
}

// Create persiste una nueva orden de mantenimiento.
func (r *MantenimientoRepo) Create(m *entity.Mantenimiento) error {
	query := `
		INSERT INTO mantenimientos (` + mantenimientoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.VehiculoID, m.Tipo, m.Estado, m.Descripcion, m.Taller, m.Costo,
		m.FechaInicio, m.FechaFin, m.CreatedAt, m.UpdatedAt, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert mantenimiento: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *MantenimientoRepo) GetByID(id string) (*entity.Mantenimiento, error) {
	query := `SELECT ` + mantenimientoColumns + ` FROM mantenimientos WHERE id = $1`
	var m entity.Mantenimiento
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.VehiculoID, &m.Tipo, &m.Estado, &m.Descripcion, &m.Taller, &m.Costo,
		&m.FechaInicio, &m.FechaFin, &m.CreatedAt, &m.UpdatedAt, &m.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mantenimiento: %w", err)
	}
	return &m, nil
}

// ListByVehiculo lista las órdenes de un vehículo con paginación.
func (r *MantenimientoRepo) ListByVehiculo(vehiculoID string, limit, offset int) ([]*entity.Mantenimiento, error) {
	query := `SELECT ` + mantenimientoColumns + ` FROM mantenimientos
		WHERE vehiculo_id = $1 ORDER BY fecha_inicio DESC LIMIT $2 OFFSET $3`
	return r.scanMany(query, vehiculoID, limit, offset)
}

// List lista órdenes con paginación.
func (r *MantenimientoRepo) List(limit, offset int) ([]*entity.Mantenimiento, error) {
	query := `SELECT ` + mantenimientoColumns + ` FROM mantenimientos
		ORDER BY fecha_inicio DESC LIMIT $1 OFFSET $2`
	return r.scanMany(query, limit, offset)
}

func (r *MantenimientoRepo) scanMany(query string, args ...any) ([]*entity.Mantenimiento, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list mantenimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Mantenimiento
	for rows.Next() {
		var m entity.Mantenimiento
		if err := rows.Scan(&m.ID, &m.VehiculoID, &m.Tipo, &m.Estado, &m.Descripcion, &m.Taller, &m.Costo,
			&m.FechaInicio, &m.FechaFin, &m.CreatedAt, &m.UpdatedAt, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan mantenimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update actualiza una orden existente.
func (r *MantenimientoRepo) Update(m *entity.Mantenimiento) error {
	query := `
		UPDATE mantenimientos
		SET tipo = $2, estado = $3, descripcion = $4, taller = $5, costo = $6,
		    fecha_inicio = $7, fecha_fin = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Tipo, m.Estado, m.Descripcion, m.Taller, m.Costo,
		m.FechaInicio, m.FechaFin, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update mantenimiento: %w", err)
	}
	return nil
}

// CountEnCurso cuenta las órdenes no finalizadas (vehículos en taller).
func (r *MantenimientoRepo) CountEnCurso() (int, error) {
	query := `SELECT COUNT(DISTINCT vehiculo_id) FROM mantenimientos WHERE estado <> $1`
	var n int
	if err := r.q.QueryRow(context.Background(), query, entity.MantFinalizado).Scan(&n); err != nil {
		return 0, fmt.Errorf("count mantenimientos en curso: %w", err)
	}
	return n, nil
}
