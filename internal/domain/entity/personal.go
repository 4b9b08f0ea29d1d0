package entity

import "time"

// Personal representa a una persona de la operación (conductor, bodeguero,
// mecánico). Es el dominio de "responsable" de los movimientos de almacén,
// aunque el libro admite texto libre para no perder historial de externos.
type Personal struct {
	ID        string
	Documento string // único
	Nombre    string
	Cargo     string
	Licencia  string // categoría de licencia de conducción, si aplica
	Telefono  string
	Activo    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
