package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/flotagest/internal/domain/entity"
	"github.com/tu-usuario/flotagest/internal/domain/repository"
)

var _ repository.TanqueRepository = (*TanqueRepo)(nil)

const tanqueColumns = `id, nombre, tipo_combustible, capacidad, nivel, umbral_critico, ubicacion, created_at, updated_at`

// TanqueRepo implementación de TanqueRepository (usable con pool o tx).
type TanqueRepo struct {
	q Querier
}

// NewTanqueRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTanqueRepository(q Querier) *TanqueRepo {
	return &TanqueRepo{q: q}
}

// Create persiste un nuevo tanque.
func (r *TanqueRepo) Create(t *entity.Tanque) error {
	query := `
		INSERT INTO tanques (` + tanqueColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Nombre, t.TipoCombustible, t.Capacidad, t.Nivel,
		t.UmbralCritico, t.Ubicacion, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tanque: %w", err)
	}
	return nil
}

// GetByID obtiene un tanque por ID.
func (r *TanqueRepo) GetByID(id string) (*entity.Tanque, error) {
	query := `SELECT ` + tanqueColumns + ` FROM tanques WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtiene el tanque y bloquea la fila (SELECT FOR UPDATE).
// Usar solo dentro de una transacción.
func (r *TanqueRepo) GetForUpdate(id string) (*entity.Tanque, error) {
	query := `SELECT ` + tanqueColumns + ` FROM tanques WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

func (r *TanqueRepo) scanOne(query, id string) (*entity.Tanque, error) {
	var t entity.Tanque
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Nombre, &t.TipoCombustible, &t.Capacidad, &t.Nivel,
		&t.UmbralCritico, &t.Ubicacion, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tanque: %w", err)
	}
	return &t, nil
}

// List lista tanques con paginación.
func (r *TanqueRepo) List(limit, offset int) ([]*entity.Tanque, error) {
	query := `SELECT ` + tanqueColumns + ` FROM tanques ORDER BY nombre LIMIT $1 OFFSET $2`
	return r.scanMany(query, limit, offset)
}

// ListCriticos lista los tanques con nivel en o bajo su umbral crítico.
func (r *TanqueRepo) ListCriticos() ([]*entity.Tanque, error) {
	query := `SELECT ` + tanqueColumns + ` FROM tanques WHERE nivel <= umbral_critico ORDER BY nombre`
	return r.scanMany(query)
}

func (r *TanqueRepo) scanMany(query string, args ...any) ([]*entity.Tanque, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tanques: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tanque
	for rows.Next() {
		var t entity.Tanque
		if err := rows.Scan(&t.ID, &t.Nombre, &t.TipoCombustible, &t.Capacidad, &t.Nivel,
			&t.UmbralCritico, &t.Ubicacion, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tanque: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza los datos maestros del tanque. No toca el nivel: eso es
// responsabilidad exclusiva de UpdateNivel dentro de una transacción.
func (r *TanqueRepo) Update(t *entity.Tanque) error {
	query := `
		UPDATE tanques
		SET nombre = $2, tipo_combustible = $3, capacidad = $4, umbral_critico = $5,
		    ubicacion = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Nombre, t.TipoCombustible, t.Capacidad, t.UmbralCritico,
		t.Ubicacion, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update tanque: %w", err)
	}
	return nil
}

// UpdateNivel persiste el nuevo nivel del tanque (llamar con la fila bloqueada).
func (r *TanqueRepo) UpdateNivel(t *entity.Tanque) error {
	query := `UPDATE tanques SET nivel = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, t.ID, t.Nivel)
	if err != nil {
		return fmt.Errorf("update nivel tanque: %w", err)
	}
	return nil
}

// Delete elimina un tanque por ID.
func (r *TanqueRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM tanques WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tanque: %w", err)
	}
	return nil
}
