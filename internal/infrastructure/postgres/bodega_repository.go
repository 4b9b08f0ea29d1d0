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

var _ repository.BodegaRepository = (*BodegaRepo)(nil)

// BodegaRepo implementación de BodegaRepository (usable con pool o tx).
type BodegaRepo struct {
	q Querier
}

// NewBodegaRepository construye el adaptador de persistencia para bodegas.
func NewBodegaRepository(q Querier) *BodegaRepo {
	return &BodegaRepo{q: q}
}

// Create persiste una nueva bodega.
func (r *BodegaRepo) Create(b *entity.Bodega) error {
	query := `
		INSERT INTO bodegas (id, nombre, direccion, responsable, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.Nombre, b.Direccion, b.Responsable, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bodega: %w", err)
	}
	return nil
}

// GetByID obtiene una bodega por ID.
func (r *BodegaRepo) GetByID(id string) (*entity.Bodega, error) {
	query := `
		SELECT id, nombre, direccion, responsable, created_at, updated_at
		FROM bodegas WHERE id = $1`
	var b entity.Bodega
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.Nombre, &b.Direccion, &b.Responsable, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bodega: %w", err)
	}
	return &b, nil
}

// List lista bodegas con paginación.
func (r *BodegaRepo) List(limit, offset int) ([]*entity.Bodega, error) {
	query := `
		SELECT id, nombre, direccion, responsable, created_at, updated_at
		FROM bodegas ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list bodegas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bodega
	for rows.Next() {
		var b entity.Bodega
		if err := rows.Scan(&b.ID, &b.Nombre, &b.Direccion, &b.Responsable, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan bodega: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Update actualiza una bodega existente.
func (r *BodegaRepo) Update(b *entity.Bodega) error {
	query := `
		UPDATE bodegas SET nombre = $2, direccion = $3, responsable = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.Nombre, b.Direccion, b.Responsable, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update bodega: %w", err)
	}
	return nil
}

// Delete elimina una bodega por ID.
func (r *BodegaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM bodegas WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: bodega con stock o movimientos registrados", domain.ErrConflict)
		}
		return fmt.Errorf("delete bodega: %w", err)
	}
	return nil
}
