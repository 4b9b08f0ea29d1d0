package dto

import "time"

// CreatePersonalRequest entrada para crear una persona.
type CreatePersonalRequest struct {
	Documento string `json:"documento" validate:"required"`
	Nombre    string `json:"nombre" validate:"required,min=1,max=200"`
	Cargo     string `json:"cargo"`
	Licencia  string `json:"licencia"`
	Telefono  string `json:"telefono"`
}

// UpdatePersonalRequest entrada para actualizar una persona.
type UpdatePersonalRequest struct {
	Nombre   *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Cargo    *string `json:"cargo"`
	Licencia *string `json:"licencia"`
	Telefono *string `json:"telefono"`
	Activo   *bool   `json:"activo"`
}

// PersonalResponse salida de una persona.
type PersonalResponse struct {
	ID        string    `json:"id"`
	Documento string    `json:"documento"`
	Nombre    string    `json:"nombre"`
	Cargo     string    `json:"cargo"`
	Licencia  string    `json:"licencia,omitempty"`
	Telefono  string    `json:"telefono,omitempty"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PersonalListResponse lista paginada de personal.
type PersonalListResponse struct {
	Items []PersonalResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
