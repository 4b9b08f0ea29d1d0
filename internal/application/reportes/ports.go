// Package reportes contiene los casos de uso de exportación: el reporte PDF
// de consumos de combustible y el export Excel del libro de almacén.
package reportes

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ConsumoParaReporte fila enriquecida del reporte de consumos: el consumo más
// los nombres que la tabla del PDF necesita.
type ConsumoParaReporte struct {
	Fecha     time.Time
	Placa     string
	Conductor string
	Tanque    string
	Litros    decimal.Decimal
	Odometro  decimal.Decimal
}

// ConsumosPDFGenerator genera la representación PDF del reporte de consumos.
type ConsumosPDFGenerator interface {
	GenerateConsumosPDF(ctx context.Context, desde, hasta time.Time, rows []ConsumoParaReporte, totalLitros decimal.Decimal) ([]byte, error)
}

// MovimientoParaExport fila enriquecida del export de movimientos de almacén.
type MovimientoParaExport struct {
	Fecha         time.Time
	Codigo        string
	Producto      string
	Bodega        string
	BodegaDestino string
	Tipo          string
	Cantidad      decimal.Decimal
	Responsable   string
	Vencimiento   *time.Time
	Nota          string
}

// MovimientosExcelExporter genera el archivo Excel del libro de movimientos.
type MovimientosExcelExporter interface {
	ExportMovimientos(ctx context.Context, desde, hasta time.Time, rows []MovimientoParaExport) ([]byte, error)
}
