package entity

import "time"

// Bodega representa un almacén físico donde se guarda producto.
type Bodega struct {
	ID          string
	Nombre      string
	Direccion   string
	Responsable string // encargado de la bodega
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
