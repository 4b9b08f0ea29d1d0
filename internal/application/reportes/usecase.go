package reportes

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/flotagest/internal/application/dto"
	"github.com/tu-usuario/flotagest/internal/domain"
	"github.com/tu-usuario/flotagest/internal/domain/entity"
	"github.com/tu-usuario/flotagest/internal/domain/repository"
	"github.com/tu-usuario/flotagest/pkg/fechas"
)

// ReportesUseCase arma los datos de cada reporte y delega el formato final en
// los generadores inyectados.
type ReportesUseCase struct {
	consumoRepo  repository.ConsumoRepository
	vehiculoRepo repository.VehiculoRepository
	tanqueRepo   repository.TanqueRepository
	movRepo      repository.MovimientoRepository
	productoRepo repository.ProductoRepository
	bodegaRepo   repository.BodegaRepository
	pdfGen       ConsumosPDFGenerator
	excelGen     MovimientosExcelExporter
}

// NewReportesUseCase construye el caso de uso inyectando todas sus dependencias.
func NewReportesUseCase(
	consumoRepo repository.ConsumoRepository,
	vehiculoRepo repository.VehiculoRepository,
	tanqueRepo repository.TanqueRepository,
	movRepo repository.MovimientoRepository,
	productoRepo repository.ProductoRepository,
	bodegaRepo repository.BodegaRepository,
	pdfGen ConsumosPDFGenerator,
	excelGen MovimientosExcelExporter,
) *ReportesUseCase {
	return &ReportesUseCase{
		consumoRepo:  consumoRepo,
		vehiculoRepo: vehiculoRepo,
		tanqueRepo:   tanqueRepo,
		movRepo:      movRepo,
		productoRepo: productoRepo,
		bodegaRepo:   bodegaRepo,
		pdfGen:       pdfGen,
		excelGen:     excelGen,
	}
}

// ConsumosPDF genera el reporte PDF de consumos del rango pedido.
// Sin rango: el mes en curso. Devuelve (bytes, filename, error).
func (uc *ReportesUseCase) ConsumosPDF(ctx context.Context, in dto.RangoFechasRequest) ([]byte, string, error) {
	desde, hasta, err := resolverRango(in)
	if err != nil {
		return nil, "", err
	}

	consumos, err := uc.consumoRepo.ListByRango(desde, hasta)
	if err != nil {
		return nil, "", fmt.Errorf("reporte consumos: listar: %w", err)
	}

	// Cache de lookups para no repetir consultas por fila.
	vehiculos := map[string]*entity.Vehiculo{}
	tanques := map[string]*entity.Tanque{}

	rows := make([]ConsumoParaReporte, 0, len(consumos))
	total := decimal.Zero
	for _, c := range consumos {
		v, ok := vehiculos[c.VehiculoID]
		if !ok {
			v, _ = uc.vehiculoRepo.GetByID(c.VehiculoID)
			vehiculos[c.VehiculoID] = v
		}
		t, ok := tanques[c.TanqueID]
		if !ok {
			t, _ = uc.tanqueRepo.GetByID(c.TanqueID)
			tanques[c.TanqueID] = t
		}
		row := ConsumoParaReporte{
			Fecha:     c.Fecha,
			Conductor: c.Conductor,
			Litros:    c.Litros,
			Odometro:  c.Odometro,
		}
		if v != nil {
			row.Placa = v.Placa
		}
		if t != nil {
			row.Tanque = t.Nombre
		}
		rows = append(rows, row)
		total = total.Add(c.Litros)
	}

	pdfBytes, err := uc.pdfGen.GenerateConsumosPDF(ctx, desde, hasta, rows, total)
	if err != nil {
		return nil, "", fmt.Errorf("reporte consumos: generación fallida: %w", err)
	}
	filename := fmt.Sprintf("consumos_%s_%s.pdf", desde.Format("20060102"), hasta.Format("20060102"))
	return pdfBytes, filename, nil
}

// MovimientosExcel genera el export Excel del libro de almacén del rango pedido.
// Sin rango: el mes en curso. Devuelve (bytes, filename, error).
func (uc *ReportesUseCase) MovimientosExcel(ctx context.Context, in dto.RangoFechasRequest) ([]byte, string, error) {
	desde, hasta, err := resolverRango(in)
	if err != nil {
		return nil, "", err
	}

	movs, err := uc.movRepo.ListByRango(desde, hasta)
	if err != nil {
		return nil, "", fmt.Errorf("export movimientos: listar: %w", err)
	}

	productos := map[string]*entity.Producto{}
	bodegas := map[string]*entity.Bodega{}
	nombreBodega := func(id string) string {
		if id == "" {
			return ""
		}
		b, ok := bodegas[id]
		if !ok {
			b, _ = uc.bodegaRepo.GetByID(id)
			bodegas[id] = b
		}
		if b == nil {
			return id
		}
		return b.Nombre
	}

	rows := make([]MovimientoParaExport, 0, len(movs))
	for _, m := range movs {
		p, ok := productos[m.ProductoID]
		if !ok {
			p, _ = uc.productoRepo.GetByID(m.ProductoID)
			productos[m.ProductoID] = p
		}
		row := MovimientoParaExport{
			Fecha:         m.Fecha,
			Bodega:        nombreBodega(m.BodegaID),
			BodegaDestino: nombreBodega(m.BodegaDestinoID),
			Tipo:          m.Tipo,
			Cantidad:      m.Cantidad,
			Responsable:   m.Responsable,
			Vencimiento:   m.FechaVencimiento,
			Nota:          m.Nota,
		}
		if p != nil {
			row.Codigo = p.Codigo
			row.Producto = p.Nombre
		}
		rows = append(rows, row)
	}

	xlsxBytes, err := uc.excelGen.ExportMovimientos(ctx, desde, hasta, rows)
	if err != nil {
		return nil, "", fmt.Errorf("export movimientos: generación fallida: %w", err)
	}
	filename := fmt.Sprintf("movimientos_%s_%s.xlsx", desde.Format("20060102"), hasta.Format("20060102"))
	return xlsxBytes, filename, nil
}

// resolverRango interpreta el rango pedido. Acepta los formatos heterogéneos
// de pkg/fechas; vacío equivale al mes en curso.
func resolverRango(in dto.RangoFechasRequest) (time.Time, time.Time, error) {
	now := time.Now()
	desde := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	hasta := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())

	if in.Desde != "" {
		f := fechas.Parse(in.Desde)
		if !f.Valida() {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: fecha desde %q", domain.ErrInvalidInput, in.Desde)
		}
		desde = f.Time()
	}
	if in.Hasta != "" {
		f := fechas.Parse(in.Hasta)
		if !f.Valida() {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: fecha hasta %q", domain.ErrInvalidInput, in.Hasta)
		}
		h := f.Time()
		// Fin de día para que el rango sea inclusivo.
		hasta = time.Date(h.Year(), h.Month(), h.Day(), 23, 59, 59, 0, h.Location())
	}
	if hasta.Before(desde) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: rango invertido", domain.ErrInvalidInput)
	}
	return desde, hasta, nil
}
