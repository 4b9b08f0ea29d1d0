package entity

import (
	"encoding/json"
	"time"
)

// Acciones auditadas.
const (
	AuditCrear      = "crear"
	AuditActualizar = "actualizar"
	AuditEliminar   = "eliminar"
)

// RegistroAuditoria deja traza de cada mutación relevante: quién, qué entidad,
// qué acción y el estado antes/después en JSON. Append-only.
type RegistroAuditoria struct {
	ID          string
	UserID      string
	UserNombre  string
	Entidad     string // vehiculo, tanque, producto, ...
	EntidadID   string
	Accion      string
	Descripcion string
	Antes       json.RawMessage
	Despues     json.RawMessage
	CreatedAt   time.Time
}
