package dto

import (
	"encoding/json"
	"time"
)

// AuditoriaResponse salida de un registro de auditoría.
type AuditoriaResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	UserNombre  string          `json:"user_nombre"`
	Entidad     string          `json:"entidad"`
	EntidadID   string          `json:"entidad_id"`
	Accion      string          `json:"accion"`
	Descripcion string          `json:"descripcion,omitempty"`
	Antes       json.RawMessage `json:"antes,omitempty"`
	Despues     json.RawMessage `json:"despues,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// AuditoriaListResponse lista paginada de registros de auditoría.
type AuditoriaListResponse struct {
	Items []AuditoriaResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
