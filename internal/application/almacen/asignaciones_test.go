package almacen_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/flotagest/internal/application/almacen"
	"github.com/tu-usuario/flotagest/internal/application/dto"
	"github.com/tu-usuario/flotagest/internal/domain"
	"github.com/tu-usuario/flotagest/internal/domain/entity"
	"github.com/tu-usuario/flotagest/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: libro, stock, productos y bodegas
// ──────────────────────────────────────────────────────────────────────────────

type memMovRepo struct{ movs []*entity.MovimientoAlmacen }

func (r *memMovRepo) Create(m *entity.MovimientoAlmacen) error {
	r.movs = append(r.movs, m)
	return nil
}
func (r *memMovRepo) GetByID(id string) (*entity.MovimientoAlmacen, error) {
	for _, m := range r.movs {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}
func (r *memMovRepo) ListByProducto(productoID string) ([]*entity.MovimientoAlmacen, error) {
	var out []*entity.MovimientoAlmacen
	for _, m := range r.movs {
		if m.ProductoID == productoID {
			out = append(out, m)
		}
	}
	return out, nil
}
func (r *memMovRepo) ListByBodega(string, *time.Time, *time.Time, int, int) ([]*entity.MovimientoAlmacen, error) {
	return r.movs, nil
}
func (r *memMovRepo) ListByRango(time.Time, time.Time) ([]*entity.MovimientoAlmacen, error) {
	return r.movs, nil
}

type memStockRepo struct{ filas map[string]*entity.StockBodega }

func stockKey(productoID, bodegaID string) string { return productoID + "|" + bodegaID }

func (r *memStockRepo) Get(productoID, bodegaID string) (*entity.StockBodega, error) {
	if s, ok := r.filas[stockKey(productoID, bodegaID)]; ok {
		return s, nil
	}
	// mismo contrato que el repo real: fila en cero si no existe
	return &entity.StockBodega{ProductoID: productoID, BodegaID: bodegaID, Cantidad: decimal.Zero}, nil
}
func (r *memStockRepo) GetForUpdate(productoID, bodegaID string) (*entity.StockBodega, error) {
	return r.Get(productoID, bodegaID)
}
func (r *memStockRepo) Upsert(s *entity.StockBodega) error {
	r.filas[stockKey(s.ProductoID, s.BodegaID)] = s
	return nil
}
func (r *memStockRepo) ListByBodega(string) ([]*entity.StockBodega, error) { return nil, nil }

type memProductoRepo struct{ productos map[string]*entity.Producto }

func (r *memProductoRepo) Create(p *entity.Producto) error { r.productos[p.ID] = p; return nil }
func (r *memProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return r.productos[id], nil
}
func (r *memProductoRepo) GetByCodigo(string) (*entity.Producto, error)  { return nil, nil }
func (r *memProductoRepo) List(int, int) ([]*entity.Producto, error)     { return nil, nil }
func (r *memProductoRepo) ListRetornables() ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range r.productos {
		if p.Retornable {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *memProductoRepo) Update(*entity.Producto) error                 { return nil }
func (r *memProductoRepo) Delete(string) error                           { return nil }
func (r *memProductoRepo) UpdateEnUso(id string, delta decimal.Decimal) error {
	p := r.productos[id]
	p.EnUso = p.EnUso.Add(delta)
	return nil
}

type memBodegaRepo struct{ bodegas map[string]*entity.Bodega }

func (r *memBodegaRepo) Create(b *entity.Bodega) error { r.bodegas[b.ID] = b; return nil }
func (r *memBodegaRepo) GetByID(id string) (*entity.Bodega, error) {
	return r.bodegas[id], nil
}
func (r *memBodegaRepo) List(int, int) ([]*entity.Bodega, error) { return nil, nil }
func (r *memBodegaRepo) Update(*entity.Bodega) error             { return nil }
func (r *memBodegaRepo) Delete(string) error                     { return nil }

// memTxRunner ejecuta el callback directo sobre los fakes (sin tx real).
type memTxRunner struct {
	movs      *memMovRepo
	stock     repository.StockRepository
	productos *memProductoRepo
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	repository.MovimientoRepository,
	repository.StockRepository,
	repository.ProductoRepository,
) error) error {
	return fn(r.movs, r.stock, r.productos)
}

// ──────────────────────────────────────────────────────────────────────────────

const (
	prodID   = "prod-1"
	bodegaID = "bod-1"
)

func nuevoEntorno(t *testing.T, retornable bool) (*almacen.RegistrarMovimientoUseCase, *almacen.AsignacionesUseCase, *memTxRunner) {
	t.Helper()
	movs := &memMovRepo{}
	stock := &memStockRepo{filas: map[string]*entity.StockBodega{}}
	productos := &memProductoRepo{productos: map[string]*entity.Producto{
		prodID: {ID: prodID, Codigo: "TAL-01", Nombre: "Taladro", Retornable: retornable},
	}}
	bodegas := &memBodegaRepo{bodegas: map[string]*entity.Bodega{
		bodegaID: {ID: bodegaID, Nombre: "Bodega Central"},
		"bod-2":  {ID: "bod-2", Nombre: "Bodega Norte"},
	}}
	tx := &memTxRunner{movs: movs, stock: stock, productos: productos}
	registrar := almacen.NewRegistrarMovimientoUseCase(tx, productos, bodegas)
	asignaciones := almacen.NewAsignacionesUseCase(movs, productos, registrar)
	return registrar, asignaciones, tx
}

func registrarOK(t *testing.T, uc *almacen.RegistrarMovimientoUseCase, in almacen.MovimientoInput) {
	t.Helper()
	require.NoError(t, uc.Registrar(context.Background(), in))
}

// Entrada y salida ajustan el stock materializado dentro de la transacción.
func TestRegistrar_EntradaYSalida(t *testing.T) {
	registrar, _, tx := nuevoEntorno(t, true)

	registrarOK(t, registrar, almacen.MovimientoInput{
		ProductoID: prodID, BodegaID: bodegaID,
		Tipo: entity.MovTipoEntrada, Cantidad: decimal.NewFromInt(10),
	})
	registrarOK(t, registrar, almacen.MovimientoInput{
		ProductoID: prodID, BodegaID: bodegaID, Responsable: "Ana",
		Tipo: entity.MovTipoSalida, Cantidad: decimal.NewFromInt(4),
	})

	stock, _ := tx.stock.Get(prodID, bodegaID)
	require.NotNil(t, stock)
	assert.True(t, stock.Cantidad.Equal(decimal.NewFromInt(6)))
	// contador informativo en_uso sigue a las salidas retornables
	p := tx.productos.productos[prodID]
	assert.True(t, p.EnUso.Equal(decimal.NewFromInt(4)))
	assert.Len(t, tx.movs.movs, 2)
}

// Salida sin stock suficiente se rechaza sin tocar el libro.
func TestRegistrar_StockInsuficiente(t *testing.T) {
	registrar, _, tx := nuevoEntorno(t, false)

	err := registrar.Registrar(context.Background(), almacen.MovimientoInput{
		ProductoID: prodID, BodegaID: bodegaID,
		Tipo: entity.MovTipoSalida, Cantidad: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, tx.movs.movs)
}

// Salida de producto retornable sin responsable es entrada inválida.
func TestRegistrar_SalidaRetornableSinResponsable(t *testing.T) {
	registrar, _, _ := nuevoEntorno(t, true)

	err := registrar.Registrar(context.Background(), almacen.MovimientoInput{
		ProductoID: prodID, BodegaID: bodegaID,
		Tipo: entity.MovTipoSalida, Cantidad: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Tipo fuera del conjunto cerrado se rechaza en la frontera.
func TestRegistrar_TipoInvalido(t *testing.T) {
	registrar, _, _ := nuevoEntorno(t, false)

	err := registrar.Registrar(context.Background(), almacen.MovimientoInput{
		ProductoID: prodID, BodegaID: bodegaID,
		Tipo: "prestamo", Cantidad: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Traslado deja dos registros en el libro y mueve stock entre bodegas.
func TestRegistrar_Traslado(t *testing.T) {
	registrar, _, tx := nuevoEntorno(t, false)

	registrarOK(t, registrar, almacen.MovimientoInput{
		ProductoID: prodID, BodegaID: bodegaID,
		Tipo: entity.MovTipoEntrada, Cantidad: decimal.NewFromInt(10),
	})
	registrarOK(t, registrar, almacen.MovimientoInput{
		ProductoID: prodID, BodegaID: bodegaID, BodegaDestinoID: "bod-2",
		Tipo: entity.MovTipoTraslado, Cantidad: decimal.NewFromInt(3),
	})

	origen, _ := tx.stock.Get(prodID, bodegaID)
	destino, _ := tx.stock.Get(prodID, "bod-2")
	assert.True(t, origen.Cantidad.Equal(decimal.NewFromInt(7)))
	assert.True(t, destino.Cantidad.Equal(decimal.NewFromInt(3)))
	assert.Len(t, tx.movs.movs, 3) // entrada + 2 filas del traslado
}

// stockGetFalla simula un error transitorio del repo al leer el destino;
// el lock de la fila origen (GetForUpdate) sigue funcionando.
type stockGetFalla struct {
	*memStockRepo
	err error
}

func (r *stockGetFalla) Get(string, string) (*entity.StockBodega, error) { return nil, r.err }

// Un error real al leer el stock destino aborta el traslado: no debe
// fabricarse una fila en cero que pise el stock existente de la bodega.
func TestRegistrar_TrasladoErrorEnDestinoAborta(t *testing.T) {
	movs := &memMovRepo{}
	stock := &memStockRepo{filas: map[string]*entity.StockBodega{
		stockKey(prodID, bodegaID): {ProductoID: prodID, BodegaID: bodegaID, Cantidad: decimal.NewFromInt(10)},
		stockKey(prodID, "bod-2"):  {ProductoID: prodID, BodegaID: "bod-2", Cantidad: decimal.NewFromInt(10)},
	}}
	productos := &memProductoRepo{productos: map[string]*entity.Producto{
		prodID: {ID: prodID, Codigo: "TAL-01", Nombre: "Taladro"},
	}}
	bodegas := &memBodegaRepo{bodegas: map[string]*entity.Bodega{
		bodegaID: {ID: bodegaID, Nombre: "Bodega Central"},
		"bod-2":  {ID: "bod-2", Nombre: "Bodega Norte"},
	}}
	fallaGet := errors.New("conexión perdida")
	tx := &memTxRunner{movs: movs, stock: &stockGetFalla{memStockRepo: stock, err: fallaGet}, productos: productos}
	registrar := almacen.NewRegistrarMovimientoUseCase(tx, productos, bodegas)

	err := registrar.Registrar(context.Background(), almacen.MovimientoInput{
		ProductoID: prodID, BodegaID: bodegaID, BodegaDestinoID: "bod-2",
		Tipo: entity.MovTipoTraslado, Cantidad: decimal.NewFromInt(3),
	})
	require.ErrorIs(t, err, fallaGet)

	// ni el stock ni el libro deben haberse tocado
	origen, _ := stock.Get(prodID, bodegaID)
	destino, _ := stock.Get(prodID, "bod-2")
	assert.True(t, origen.Cantidad.Equal(decimal.NewFromInt(10)))
	assert.True(t, destino.Cantidad.Equal(decimal.NewFromInt(10)))
	assert.Empty(t, movs.movs)
}

// Ciclo completo: salida → asignación activa → devolución → asignación desaparece.
func TestAsignaciones_CicloDevolucion(t *testing.T) {
	registrar, asignaciones, tx := nuevoEntorno(t, true)
	ctx := context.Background()

	registrarOK(t, registrar, almacen.MovimientoInput{
		ProductoID: prodID, BodegaID: bodegaID,
		Tipo: entity.MovTipoEntrada, Cantidad: decimal.NewFromInt(10),
	})
	vence := time.Now().AddDate(0, 0, 7)
	registrarOK(t, registrar, almacen.MovimientoInput{
		ProductoID: prodID, BodegaID: bodegaID, Responsable: "Ana",
		Tipo: entity.MovTipoSalida, Cantidad: decimal.NewFromInt(5), Vencimiento: &vence,
	})

	resp, err := asignaciones.Activas(ctx, prodID)
	require.NoError(t, err)
	require.Len(t, resp.Asignaciones, 1)
	a := resp.Asignaciones[0]
	assert.Equal(t, "Ana", a.Responsable)
	assert.True(t, a.CantidadPendiente.Equal(decimal.NewFromInt(5)))
	assert.False(t, a.Vencida) // vence en una semana

	// Devolución con responsable y cantidad copiados de la asignación.
	err = asignaciones.RegistrarDevolucion(ctx, "user-1", dto.RegistrarDevolucionRequest{
		ProductoID:  prodID,
		BodegaID:    bodegaID,
		Responsable: a.Responsable,
		Cantidad:    dto.CantidadFlexible{Decimal: a.CantidadPendiente},
	})
	require.NoError(t, err)

	// La vista no se parchea: la siguiente reconciliación refleja el retorno.
	resp, err = asignaciones.Activas(ctx, prodID)
	require.NoError(t, err)
	assert.Empty(t, resp.Asignaciones)

	// El stock volvió a la bodega y en_uso quedó en cero.
	stock, _ := tx.stock.Get(prodID, bodegaID)
	assert.True(t, stock.Cantidad.Equal(decimal.NewFromInt(10)))
	assert.True(t, tx.productos.productos[prodID].EnUso.IsZero())
}

// Producto inexistente: ErrNotFound, no lista vacía.
func TestAsignaciones_ProductoInexistente(t *testing.T) {
	_, asignaciones, _ := nuevoEntorno(t, true)
	_, err := asignaciones.Activas(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Devolución sin responsable o sin cantidad positiva es inválida.
func TestDevolucion_EntradaInvalida(t *testing.T) {
	_, asignaciones, _ := nuevoEntorno(t, true)
	ctx := context.Background()

	err := asignaciones.RegistrarDevolucion(ctx, "user-1", dto.RegistrarDevolucionRequest{
		ProductoID: prodID, BodegaID: bodegaID, Cantidad: dto.CantidadFlexible{Decimal: decimal.NewFromInt(1)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = asignaciones.RegistrarDevolucion(ctx, "user-1", dto.RegistrarDevolucionRequest{
		ProductoID: prodID, BodegaID: bodegaID, Responsable: "Ana",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
