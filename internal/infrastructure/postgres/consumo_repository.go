package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/flotagest/internal/domain/entity"
	"github.com/tu-usuario/flotagest/internal/domain/repository"
)

var _ repository.ConsumoRepository = (*ConsumoRepo)(nil)

const consumoColumns = `id, vehiculo_id, tanque_id, litros, odometro, conductor, nota, fecha, created_at, created_by`

// ConsumoRepo implementación de ConsumoRepository (usable con pool o tx).
// La tabla es append-only: no hay Update ni Delete.
type ConsumoRepo struct {
	q Querier
}

// NewConsumoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewConsumoRepository(q Querier) *ConsumoRepo {
	return &ConsumoRepo{q: q}
}

// Create persiste un consumo de combustible.
func (r *ConsumoRepo) Create(c *entity.ConsumoCombustible) error {
	query := `
		INSERT INTO consumos_combustible (` + consumoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.VehiculoID, c.TanqueID, c.Litros, c.Odometro,
		c.Conductor, c.Nota, c.Fecha, c.CreatedAt, c.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert consumo: %w", err)
	}
	return nil
}

// GetByID obtiene un consumo por ID.
func (r *ConsumoRepo) GetByID(id string) (*entity.ConsumoCombustible, error) {
	query := `SELECT ` + consumoColumns + ` FROM consumos_combustible WHERE id = $1`
	var c entity.ConsumoCombustible
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.VehiculoID, &c.TanqueID, &c.Litros, &c.Odometro,
		&c.Conductor, &c.Nota, &c.Fecha, &c.CreatedAt, &c.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get consumo: %w", err)
	}
	return &c, nil
}

// ListByVehiculo lista los consumos de un vehículo, opcionalmente filtrados por rango.
func (r *ConsumoRepo) ListByVehiculo(vehiculoID string, from, to *time.Time, limit, offset int) ([]*entity.ConsumoCombustible, error) {
	query := `SELECT ` + consumoColumns + ` FROM consumos_combustible WHERE vehiculo_id = $1`
	args := []any{vehiculoID}
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

// ListByRango lista todos los consumos del rango dado, en orden cronológico.
func (r *ConsumoRepo) ListByRango(from, to time.Time) ([]*entity.ConsumoCombustible, error) {
	query := `SELECT ` + consumoColumns + ` FROM consumos_combustible
		WHERE fecha >= $1 AND fecha <= $2 ORDER BY fecha`
	return r.scanMany(query, from, to)
}

func (r *ConsumoRepo) scanMany(query string, args ...any) ([]*entity.ConsumoCombustible, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list consumos: %w", err)
	}
	defer rows.Close()
	var list []*entity.ConsumoCombustible
	for rows.Next() {
		var c entity.ConsumoCombustible
		if err := rows.Scan(&c.ID, &c.VehiculoID, &c.TanqueID, &c.Litros, &c.Odometro,
			&c.Conductor, &c.Nota, &c.Fecha, &c.CreatedAt, &c.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan consumo: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
