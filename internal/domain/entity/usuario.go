package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin      = "admin"
	RolBodeguero  = "bodeguero"
	RolSupervisor = "supervisor"
)

// Usuario representa un usuario del sistema.
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Nombre       string
	Rol          string // admin, bodeguero, supervisor
	Estado       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
