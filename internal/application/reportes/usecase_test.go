package reportes_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/flotagest/internal/application/dto"
	"github.com/tu-usuario/flotagest/internal/application/reportes"
	"github.com/tu-usuario/flotagest/internal/domain"
	"github.com/tu-usuario/flotagest/internal/domain/entity"
)

type memConsumoRepo struct{ consumos []*entity.ConsumoCombustible }

func (r *memConsumoRepo) Create(*entity.ConsumoCombustible) error                 { return nil }
func (r *memConsumoRepo) GetByID(string) (*entity.ConsumoCombustible, error)      { return nil, nil }
func (r *memConsumoRepo) ListByVehiculo(string, *time.Time, *time.Time, int, int) ([]*entity.ConsumoCombustible, error) {
	return r.consumos, nil
}
func (r *memConsumoRepo) ListByRango(from, to time.Time) ([]*entity.ConsumoCombustible, error) {
	out := make([]*entity.ConsumoCombustible, 0, len(r.consumos))
	for _, c := range r.consumos {
		if !c.Fecha.Before(from) && !c.Fecha.After(to) {
			out = append(out, c)
		}
	}
	return out, nil
}

type memVehiculoRepo struct{ vehiculos map[string]*entity.Vehiculo }

func (r *memVehiculoRepo) Create(*entity.Vehiculo) error                { return nil }
func (r *memVehiculoRepo) GetByID(id string) (*entity.Vehiculo, error)  { return r.vehiculos[id], nil }
func (r *memVehiculoRepo) GetByPlaca(string) (*entity.Vehiculo, error)  { return nil, nil }
func (r *memVehiculoRepo) List(int, int) ([]*entity.Vehiculo, error)    { return nil, nil }
func (r *memVehiculoRepo) Update(*entity.Vehiculo) error                { return nil }
func (r *memVehiculoRepo) Delete(string) error                          { return nil }

type memTanqueRepo struct{ tanques map[string]*entity.Tanque }

func (r *memTanqueRepo) Create(*entity.Tanque) error                    { return nil }
func (r *memTanqueRepo) GetByID(id string) (*entity.Tanque, error)      { return r.tanques[id], nil }
func (r *memTanqueRepo) GetForUpdate(id string) (*entity.Tanque, error) { return r.tanques[id], nil }
func (r *memTanqueRepo) List(int, int) ([]*entity.Tanque, error)        { return nil, nil }
func (r *memTanqueRepo) ListCriticos() ([]*entity.Tanque, error)        { return nil, nil }
func (r *memTanqueRepo) Update(*entity.Tanque) error                    { return nil }
func (r *memTanqueRepo) UpdateNivel(*entity.Tanque) error               { return nil }
func (r *memTanqueRepo) Delete(string) error                            { return nil }

type memMovimientoRepo struct{ movs []*entity.MovimientoAlmacen }

func (r *memMovimientoRepo) Create(*entity.MovimientoAlmacen) error            { return nil }
func (r *memMovimientoRepo) GetByID(string) (*entity.MovimientoAlmacen, error) { return nil, nil }
func (r *memMovimientoRepo) ListByProducto(string) ([]*entity.MovimientoAlmacen, error) {
	return r.movs, nil
}
func (r *memMovimientoRepo) ListByBodega(string, *time.Time, *time.Time, int, int) ([]*entity.MovimientoAlmacen, error) {
	return r.movs, nil
}
func (r *memMovimientoRepo) ListByRango(time.Time, time.Time) ([]*entity.MovimientoAlmacen, error) {
	return r.movs, nil
}

type memProductoRepo struct{ productos map[string]*entity.Producto }

func (r *memProductoRepo) Create(*entity.Producto) error                  { return nil }
func (r *memProductoRepo) GetByID(id string) (*entity.Producto, error)    { return r.productos[id], nil }
func (r *memProductoRepo) GetByCodigo(string) (*entity.Producto, error)   { return nil, nil }
func (r *memProductoRepo) List(int, int) ([]*entity.Producto, error)      { return nil, nil }
func (r *memProductoRepo) ListRetornables() ([]*entity.Producto, error)   { return nil, nil }
func (r *memProductoRepo) Update(*entity.Producto) error                  { return nil }
func (r *memProductoRepo) UpdateEnUso(string, decimal.Decimal) error      { return nil }
func (r *memProductoRepo) Delete(string) error                            { return nil }

type memBodegaRepo struct{ bodegas map[string]*entity.Bodega }

func (r *memBodegaRepo) Create(*entity.Bodega) error               { return nil }
func (r *memBodegaRepo) GetByID(id string) (*entity.Bodega, error) { return r.bodegas[id], nil }
func (r *memBodegaRepo) List(int, int) ([]*entity.Bodega, error)   { return nil, nil }
func (r *memBodegaRepo) Update(*entity.Bodega) error               { return nil }
func (r *memBodegaRepo) Delete(string) error                       { return nil }

// fakePDFGen captura las filas que llegaron al generador.
type fakePDFGen struct {
	rows  []reportes.ConsumoParaReporte
	total decimal.Decimal
}

func (g *fakePDFGen) GenerateConsumosPDF(_ context.Context, _, _ time.Time, rows []reportes.ConsumoParaReporte, total decimal.Decimal) ([]byte, error) {
	g.rows = rows
	g.total = total
	return []byte("%PDF-fake"), nil
}

type fakeExcelGen struct{ rows []reportes.MovimientoParaExport }

func (g *fakeExcelGen) ExportMovimientos(_ context.Context, _, _ time.Time, rows []reportes.MovimientoParaExport) ([]byte, error) {
	g.rows = rows
	return []byte("PK-fake"), nil
}

func nuevoEntornoReportes() (*reportes.ReportesUseCase, *fakePDFGen, *fakeExcelGen) {
	consumos := &memConsumoRepo{consumos: []*entity.ConsumoCombustible{
		{ID: "c1", VehiculoID: "vh-1", TanqueID: "tq-1", Litros: decimal.NewFromInt(40),
			Odometro: decimal.NewFromInt(50100), Conductor: "Pedro", Fecha: time.Now()},
		{ID: "c2", VehiculoID: "vh-1", TanqueID: "tq-1", Litros: decimal.NewFromFloat(35.5),
			Odometro: decimal.NewFromInt(50400), Conductor: "Pedro", Fecha: time.Now()},
	}}
	vehiculos := &memVehiculoRepo{vehiculos: map[string]*entity.Vehiculo{
		"vh-1": {ID: "vh-1", Placa: "ABC123"},
	}}
	tanques := &memTanqueRepo{tanques: map[string]*entity.Tanque{
		"tq-1": {ID: "tq-1", Nombre: "Principal"},
	}}
	movs := &memMovimientoRepo{movs: []*entity.MovimientoAlmacen{
		{ID: "m1", ProductoID: "pr-1", BodegaID: "bd-1", Tipo: entity.MovTipoSalida,
			Cantidad: decimal.NewFromInt(3), Responsable: "Juan Soto", Fecha: time.Now()},
	}}
	productos := &memProductoRepo{productos: map[string]*entity.Producto{
		"pr-1": {ID: "pr-1", Codigo: "TAL-001", Nombre: "Taladro"},
	}}
	bodegas := &memBodegaRepo{bodegas: map[string]*entity.Bodega{
		"bd-1": {ID: "bd-1", Nombre: "Bodega Central"},
	}}
	pdfGen := &fakePDFGen{}
	excelGen := &fakeExcelGen{}
	uc := reportes.NewReportesUseCase(consumos, vehiculos, tanques, movs, productos, bodegas, pdfGen, excelGen)
	return uc, pdfGen, excelGen
}

func TestConsumosPDF_EnriqueceFilasYTotaliza(t *testing.T) {
	uc, pdfGen, _ := nuevoEntornoReportes()

	pdf, filename, err := uc.ConsumosPDF(context.Background(), dto.RangoFechasRequest{})
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdf)
	assert.Regexp(t, `^consumos_\d{8}_\d{8}\.pdf$`, filename)

	require.Len(t, pdfGen.rows, 2)
	assert.Equal(t, "ABC123", pdfGen.rows[0].Placa, "la placa debe resolverse desde el vehículo")
	assert.Equal(t, "Principal", pdfGen.rows[0].Tanque, "el nombre debe resolverse desde el tanque")
	assert.True(t, pdfGen.total.Equal(decimal.NewFromFloat(75.5)),
		"el total debe sumar los litros de todas las filas: %s", pdfGen.total)
}

func TestMovimientosExcel_EnriqueceFilas(t *testing.T) {
	uc, _, excelGen := nuevoEntornoReportes()

	xlsx, filename, err := uc.MovimientosExcel(context.Background(), dto.RangoFechasRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, xlsx)
	assert.Regexp(t, `^movimientos_\d{8}_\d{8}\.xlsx$`, filename)

	require.Len(t, excelGen.rows, 1)
	assert.Equal(t, "TAL-001", excelGen.rows[0].Codigo)
	assert.Equal(t, "Taladro", excelGen.rows[0].Producto)
	assert.Equal(t, "Bodega Central", excelGen.rows[0].Bodega)
}

func TestReportes_RangoExplicitoFormatosFlexibles(t *testing.T) {
	uc, _, _ := nuevoEntornoReportes()

	// Mismos formatos que acepta el resto de la app: dd-mm-yyyy y yyyy-mm-dd.
	_, filename, err := uc.ConsumosPDF(context.Background(), dto.RangoFechasRequest{
		Desde: "01-03-2026",
		Hasta: "2026-03-31",
	})
	require.NoError(t, err)
	assert.Equal(t, "consumos_20260301_20260331.pdf", filename)
}

func TestReportes_FechaInvalidaRetornaErrInvalidInput(t *testing.T) {
	uc, _, _ := nuevoEntornoReportes()

	_, _, err := uc.ConsumosPDF(context.Background(), dto.RangoFechasRequest{Desde: "no-es-fecha"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReportes_RangoInvertidoRetornaError(t *testing.T) {
	uc, _, _ := nuevoEntornoReportes()

	_, _, err := uc.MovimientosExcel(context.Background(), dto.RangoFechasRequest{
		Desde: "2026-04-30",
		Hasta: "2026-04-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
