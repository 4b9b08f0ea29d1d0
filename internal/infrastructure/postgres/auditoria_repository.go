package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/flotagest/internal/domain/entity"
	"github.com/tu-usuario/flotagest/internal/domain/repository"
)

var _ repository.AuditoriaRepository = (*AuditoriaRepo)(nil)

// AuditoriaRepo implementación del registro de auditoría sobre PostgreSQL.
// Append-only: solo inserta y lista.
type AuditoriaRepo struct {
	q Querier
}

// NewAuditoriaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAuditoriaRepository(q Querier) *AuditoriaRepo {
	return &AuditoriaRepo{q: q}
}

// Create persiste un registro de auditoría.
func (r *AuditoriaRepo) Create(a *entity.RegistroAuditoria) error {
	query := `
		INSERT INTO auditoria (id, user_id, user_nombre, entidad, entidad_id, accion, descripcion, antes, despues, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.UserID, a.UserNombre, a.Entidad, a.EntidadID, a.Accion,
		a.Descripcion, a.Antes, a.Despues, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert auditoria: %w", err)
	}
	return nil
}

// List consulta la traza filtrando por entidad y rango de fechas.
func (r *AuditoriaRepo) List(entidad string, from, to *time.Time, limit, offset int) ([]*entity.RegistroAuditoria, error) {
	query := `
		SELECT id, user_id, user_nombre, entidad, entidad_id, accion, descripcion, antes, despues, created_at
		FROM auditoria WHERE 1=1`
	var args []any
	if entidad != "" {
		args = append(args, entidad)
		query += fmt.Sprintf(" AND entidad = $%d", len(args))
	}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list auditoria: %w", err)
	}
	defer rows.Close()
	var list []*entity.RegistroAuditoria
	for rows.Next() {
		var a entity.RegistroAuditoria
		if err := rows.Scan(&a.ID, &a.UserID, &a.UserNombre, &a.Entidad, &a.EntidadID, &a.Accion,
			&a.Descripcion, &a.Antes, &a.Despues, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan auditoria: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
