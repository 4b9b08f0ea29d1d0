package dto

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CantidadFlexible es un decimal que tolera entradas malformadas en la
// frontera de ingreso: número JSON, string numérico, o basura que se coerce a
// cero sin abortar el parseo del resto del documento.
type CantidadFlexible struct {
	decimal.Decimal
}

// UnmarshalJSON acepta 5, "5", "5.5"; cualquier otra cosa queda en cero.
func (c *CantidadFlexible) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		c.Decimal = decimal.Zero
		return nil
	}
	s := string(bytes.Trim(data, `"`))
	d, err := decimal.NewFromString(s)
	if err != nil {
		c.Decimal = decimal.Zero
		return nil
	}
	c.Decimal = d
	return nil
}

// MarshalJSON serializa como número JSON.
func (c CantidadFlexible) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Decimal)
}

// RegistrarMovimientoRequest body para POST /api/almacen/movimientos.
// Para entrada/salida/retorno/baja: producto, bodega, tipo y cantidad.
// Para traslado: bodega_destino_id además de la bodega origen.
// Fecha y vencimiento admiten los formatos heterogéneos de pkg/fechas.
type RegistrarMovimientoRequest struct {
	ProductoID       string           `json:"producto_id"`
	BodegaID         string           `json:"bodega_id"`
	BodegaDestinoID  string           `json:"bodega_destino_id,omitempty"`
	Tipo             string           `json:"tipo"`
	Cantidad         CantidadFlexible `json:"cantidad"`
	Responsable      string           `json:"responsable,omitempty"`
	Referencia       string           `json:"referencia,omitempty"`
	Nota             string           `json:"nota,omitempty"`
	Fecha            string           `json:"fecha,omitempty"`
	FechaVencimiento string           `json:"fecha_vencimiento,omitempty"`
}

// MovimientoResponse salida de un movimiento del libro.
type MovimientoResponse struct {
	ID               string          `json:"id"`
	ProductoID       string          `json:"producto_id"`
	BodegaID         string          `json:"bodega_id"`
	BodegaDestinoID  string          `json:"bodega_destino_id,omitempty"`
	Tipo             string          `json:"tipo"`
	Cantidad         decimal.Decimal `json:"cantidad"`
	Responsable      string          `json:"responsable,omitempty"`
	Referencia       string          `json:"referencia,omitempty"`
	Nota             string          `json:"nota,omitempty"`
	Fecha            string          `json:"fecha"`
	FechaVencimiento string          `json:"fecha_vencimiento,omitempty"`
}

// MovimientoListResponse lista paginada de movimientos.
type MovimientoListResponse struct {
	Items []MovimientoResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// AsignacionDTO asignación de custodia activa derivada del libro.
// Se recalcula completa en cada lectura; no tiene identidad propia.
type AsignacionDTO struct {
	Responsable       string          `json:"responsable"`
	CantidadPendiente decimal.Decimal `json:"cantidad_pendiente"`
	UltimaActividad   string          `json:"ultima_actividad,omitempty"`
	PrimerVencimiento string          `json:"primer_vencimiento,omitempty"`
	Vencida           bool            `json:"vencida"`
}

// AsignacionesResponse respuesta de GET /api/almacen/productos/:id/asignaciones.
type AsignacionesResponse struct {
	ProductoID   string          `json:"producto_id"`
	Asignaciones []AsignacionDTO `json:"asignaciones"`
}

// RegistrarDevolucionRequest body para POST /api/almacen/devoluciones: el
// usuario devuelve una asignación activa. Cantidad y responsable se copian de
// la asignación seleccionada en pantalla.
type RegistrarDevolucionRequest struct {
	ProductoID  string           `json:"producto_id"`
	BodegaID    string           `json:"bodega_id"`
	Responsable string           `json:"responsable"`
	Cantidad    CantidadFlexible `json:"cantidad"`
	Nota        string           `json:"nota,omitempty"`
}
