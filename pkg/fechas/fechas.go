// Package fechas centraliza el parseo de fechas heterogéneas del sistema.
//
// Las fechas llegan en varios formatos según su origen: ISO-8601/RFC3339 desde
// la API y la base de datos, y DD-MM-YYYY (con o sin HH:mm) desde planillas
// importadas y registros antiguos. Todo el parseo vive aquí para que la
// heurística de desambiguación exista exactamente una vez.
package fechas

import (
	"strings"
	"time"
)

// Formatos de presentación fijos (locale es-CO).
const (
	FormatoFecha     = "02-01-2006"
	FormatoFechaHora = "02-01-2006 15:04"
)

// formatosDirectos se intentan en orden antes de la heurística por guiones.
var formatosDirectos = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Fecha es un instante parseado de una cadena heterogénea. Conserva la cadena
// original para mostrarla sin cambios cuando el parseo falla.
type Fecha struct {
	t        time.Time
	valida   bool
	conHora  bool
	original string
}

// Invalida es el centinela para cadenas vacías o no parseables.
var Invalida = Fecha{}

// Desde construye una Fecha válida a partir de un time.Time (ej. valores de DB).
func Desde(t time.Time) Fecha {
	return Fecha{t: t, valida: true, conHora: true}
}

// Parse intenta convertir s en un instante comparable.
//
// Orden de desambiguación:
//  1. Parseo directo (RFC3339 e ISO sin zona).
//  2. Triple separado por guiones: si el primer componente tiene 4 dígitos se
//     interpreta como YYYY-MM-DD; si no, como DD-MM-YYYY con HH:mm opcional.
//  3. Si todo falla, el resultado es inválido y String() devuelve s tal cual.
//
// Para fechas genuinamente ambiguas (día ≤ 12) el único desambiguador es el
// largo del primer componente; no se aplican más heurísticas.
func Parse(s string) Fecha {
	s = strings.TrimSpace(s)
	if s == "" {
		return Invalida
	}
	for _, layout := range formatosDirectos {
		if t, err := time.Parse(layout, s); err == nil {
			return Fecha{t: t, valida: true, conHora: true, original: s}
		}
	}

	fechaParte := s
	horaParte := ""
	if idx := strings.IndexByte(s, ' '); idx > 0 {
		fechaParte, horaParte = s[:idx], strings.TrimSpace(s[idx+1:])
	}
	partes := strings.Split(fechaParte, "-")
	if len(partes) != 3 {
		return Fecha{original: s}
	}

	layout := "02-01-2006"
	if len(partes[0]) == 4 {
		layout = "2006-01-02"
	}
	conHora := false
	if horaParte != "" {
		layout += " 15:04"
		fechaParte = fechaParte + " " + horaParte
		conHora = true
	}
	t, err := time.Parse(layout, fechaParte)
	if err != nil {
		return Fecha{original: s}
	}
	return Fecha{t: t, valida: true, conHora: conHora, original: s}
}

// Valida indica si la cadena pudo parsearse.
func (f Fecha) Valida() bool { return f.valida }

// Time devuelve el instante. Solo tiene sentido si Valida() es true.
func (f Fecha) Time() time.Time { return f.t }

// Antes compara cronológicamente. Una fecha inválida nunca es "antes".
func (f Fecha) Antes(otra Fecha) bool {
	if !f.valida || !otra.valida {
		return false
	}
	return f.t.Before(otra.t)
}

// Despues compara cronológicamente. Una fecha inválida nunca es "después".
func (f Fecha) Despues(otra Fecha) bool {
	if !f.valida || !otra.valida {
		return false
	}
	return f.t.After(otra.t)
}

// DiaVencido indica si el día calendario de f ya transcurrió por completo
// respecto de ahora: una fecha de "ayer" está vencida, una de "hoy" todavía no.
func (f Fecha) DiaVencido(ahora time.Time) bool {
	if !f.valida {
		return false
	}
	inicioHoy := time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, ahora.Location())
	return f.t.In(ahora.Location()).Before(inicioHoy)
}

// String devuelve la fecha en formato de presentación fijo, o la cadena
// original sin cambios si el parseo falló (el caller nunca muestra un error).
func (f Fecha) String() string {
	if !f.valida {
		return f.original
	}
	if f.conHora && (f.t.Hour() != 0 || f.t.Minute() != 0) {
		return f.t.Format(FormatoFechaHora)
	}
	return f.t.Format(FormatoFecha)
}

// Min devuelve la menor de dos fechas, ignorando inválidas.
func Min(a, b Fecha) Fecha {
	switch {
	case !a.valida:
		return b
	case !b.valida:
		return a
	case b.t.Before(a.t):
		return b
	default:
		return a
	}
}

// Max devuelve la mayor de dos fechas, ignorando inválidas.
func Max(a, b Fecha) Fecha {
	switch {
	case !a.valida:
		return b
	case !b.valida:
		return a
	case b.t.After(a.t):
		return b
	default:
		return a
	}
}
