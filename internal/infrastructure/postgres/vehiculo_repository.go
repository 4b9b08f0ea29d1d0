package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/flotagest/internal/domain"
	"github.com/tu-usuario/flotagest/internal/domain/entity"
	"github.com/tu-usuario/flotagest/internal/domain/repository"
)

var _ repository.VehiculoRepository = (*VehiculoRepo)(nil)

// VehiculoRepo implementación de VehiculoRepository (usable con pool o tx).
type VehiculoRepo struct {
	q Querier
}

// NewVehiculoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVehiculoRepository(q Querier) *VehiculoRepo {
	return &VehiculoRepo{q: q}
}

// Create persiste un nuevo vehículo.
func (r *VehiculoRepo) Create(v *entity.Vehiculo) error {
	query := `
		INSERT INTO vehiculos (id, placa, marca, modelo, anio, tipo_combustible, odometro, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.Placa, v.Marca, v.Modelo, v.Anio, v.TipoCombustible,
		v.Odometro, v.Estado, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vehiculo: %w", err)
	}
	return nil
}

// GetByID obtiene un vehículo por ID.
func (r *VehiculoRepo) GetByID(id string) (*entity.Vehiculo, error) {
	return r.getBy("id", id)
}

// GetByPlaca obtiene un vehículo por placa.
func (r *VehiculoRepo) GetByPlaca(placa string) (*entity.Vehiculo, error) {
	return r.getBy("placa", placa)
}

func (r *VehiculoRepo) getBy(field, value string) (*entity.Vehiculo, error) {
	query := fmt.Sprintf(`
		SELECT id, placa, marca, modelo, anio, tipo_combustible, odometro, estado, created_at, updated_at
		FROM vehiculos WHERE %s = $1`, field)
	var v entity.Vehiculo
	err := r.q.QueryRow(context.Background(), query, value).Scan(
		&v.ID, &v.Placa, &v.Marca, &v.Modelo, &v.Anio, &v.TipoCombustible,
		&v.Odometro, &v.Estado, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehiculo: %w", err)
	}
	return &v, nil
}

// List lista vehículos con paginación.
func (r *VehiculoRepo) List(limit, offset int) ([]*entity.Vehiculo, error) {
	query := `
		SELECT id, placa, marca, modelo, anio, tipo_combustible, odometro, estado, created_at, updated_at
		FROM vehiculos ORDER BY placa LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vehiculos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vehiculo
	for rows.Next() {
		var v entity.Vehiculo
		if err := rows.Scan(&v.ID, &v.Placa, &v.Marca, &v.Modelo, &v.Anio, &v.TipoCombustible,
			&v.Odometro, &v.Estado, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan vehiculo: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Update actualiza un vehículo existente.
func (r *VehiculoRepo) Update(v *entity.Vehiculo) error {
	query := `
		UPDATE vehiculos
		SET placa = $2, marca = $3, modelo = $4, anio = $5, tipo_combustible = $6,
		    odometro = $7, estado = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.Placa, v.Marca, v.Modelo, v.Anio, v.TipoCombustible,
		v.Odometro, v.Estado, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update vehiculo: %w", err)
	}
	return nil
}

// Delete elimina un vehículo por ID.
func (r *VehiculoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM vehiculos WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: vehículo con consumos o mantenimientos registrados", domain.ErrConflict)
		}
		return fmt.Errorf("delete vehiculo: %w", err)
	}
	return nil
}
