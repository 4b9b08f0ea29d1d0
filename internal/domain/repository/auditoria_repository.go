package repository

import (
	"time"

	"github.com/tu-usuario/flotagest/internal/domain/entity"
)

// AuditoriaRepository define el puerto para el registro de auditoría (append-only).
type AuditoriaRepository interface {
	Create(r *entity.RegistroAuditoria) error
	List(entidad string, from, to *time.Time, limit, offset int) ([]*entity.RegistroAuditoria, error)
}
