// Package excel implementa el export del libro de movimientos en formato xlsx.
package excel

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/flotagest/internal/application/reportes"
	"github.com/tu-usuario/flotagest/pkg/fechas"
)

const sheetName = "Movimientos"

// ExcelizeExporter implementa reportes.MovimientosExcelExporter usando excelize.
type ExcelizeExporter struct{}

// NewExcelizeExporter construye el exportador.
func NewExcelizeExporter() *ExcelizeExporter { return &ExcelizeExporter{} }

// ExportMovimientos genera el xlsx y devuelve sus bytes.
// Una hoja, una fila de cabecera en negrita y una fila por movimiento.
func (e *ExcelizeExporter) ExportMovimientos(
	_ context.Context,
	desde, hasta time.Time,
	rows []reportes.MovimientoParaExport,
) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("excel: crear hoja: %w", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	header := []interface{}{
		"Fecha", "Código", "Producto", "Bodega", "Bodega destino",
		"Tipo", "Cantidad", "Responsable", "Vencimiento", "Nota",
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("excel: cabecera: %w", err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		f.SetRowStyle(sheetName, 1, 1, boldStyle)
	}

	for i, r := range rows {
		vence := ""
		if r.Vencimiento != nil {
			vence = r.Vencimiento.Format(fechas.FormatoFecha)
		}
		cantidad, _ := r.Cantidad.Float64()
		cells := []interface{}{
			r.Fecha.Format(fechas.FormatoFechaHora),
			r.Codigo,
			r.Producto,
			r.Bodega,
			r.BodegaDestino,
			r.Tipo,
			cantidad,
			r.Responsable,
			vence,
			r.Nota,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", i+2, err)
		}
	}

	// Anchos razonables para lectura sin ajustar columnas a mano.
	f.SetColWidth(sheetName, "A", "A", 18)
	f.SetColWidth(sheetName, "B", "F", 14)
	f.SetColWidth(sheetName, "C", "C", 28)
	f.SetColWidth(sheetName, "H", "H", 20)
	f.SetColWidth(sheetName, "J", "J", 30)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar: %w", err)
	}
	return buf.Bytes(), nil
}
