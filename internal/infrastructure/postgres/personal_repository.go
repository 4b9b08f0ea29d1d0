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

var _ repository.PersonalRepository = (*PersonalRepo)(nil)

const personalColumns = `id, documento, nombre, cargo, licencia, telefono, activo, created_at, updated_at`

// PersonalRepo implementación de PersonalRepository (usable con pool o tx).
type PersonalRepo struct {
	q Querier
}

// NewPersonalRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPersonalRepository(q Querier) *PersonalRepo {
	return &PersonalRepo{q: q}
}

// Create persiste una nueva persona.
func (r *PersonalRepo) Create(p *entity.Personal) error {
	query := `
		INSERT INTO personal (` + personalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Documento, p.Nombre, p.Cargo, p.Licencia, p.Telefono,
		p.Activo, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert personal: %w", err)
	}
	return nil
}

// GetByID obtiene una persona por ID.
func (r *PersonalRepo) GetByID(id string) (*entity.Personal, error) {
	return r.getBy("id", id)
}

// GetByDocumento obtiene una persona por documento.
func (r *PersonalRepo) GetByDocumento(documento string) (*entity.Personal, error) {
	return r.getBy("documento", documento)
}

func (r *PersonalRepo) getBy(field, value string) (*entity.Personal, error) {
	query := fmt.Sprintf(`SELECT `+personalColumns+` FROM personal WHERE %s = $1`, field)
	var p entity.Personal
	err := r.q.QueryRow(context.Background(), query, value).Scan(
		&p.ID, &p.Documento, &p.Nombre, &p.Cargo, &p.Licencia, &p.Telefono,
		&p.Activo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get personal: %w", err)
	}
	return &p, nil
}

// List lista personal con paginación.
func (r *PersonalRepo) List(limit, offset int) ([]*entity.Personal, error) {
	query := `SELECT ` + personalColumns + ` FROM personal ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list personal: %w", err)
	}
	defer rows.Close()
	var list []*entity.Personal
	for rows.Next() {
		var p entity.Personal
		if err := rows.Scan(&p.ID, &p.Documento, &p.Nombre, &p.Cargo, &p.Licencia, &p.Telefono,
			&p.Activo, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan personal: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza una persona existente.
func (r *PersonalRepo) Update(p *entity.Personal) error {
	query := `
		UPDATE personal
		SET nombre = $2, cargo = $3, licencia = $4, telefono = $5, activo = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Cargo, p.Licencia, p.Telefono, p.Activo, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update personal: %w", err)
	}
	return nil
}

// Delete elimina una persona por ID.
func (r *PersonalRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM personal WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete personal: %w", err)
	}
	return nil
}
