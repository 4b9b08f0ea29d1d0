package almacen

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/flotagest/internal/application/dto"
	"github.com/tu-usuario/flotagest/internal/domain"
	"github.com/tu-usuario/flotagest/internal/domain/entity"
	"github.com/tu-usuario/flotagest/internal/domain/repository"
	"github.com/tu-usuario/flotagest/pkg/fechas"
)

// RegistrarMovimientoUseCase registra movimientos del libro de almacén de forma
// transaccional (entrada, salida, traslado, retorno, baja) con bloqueo de fila
// (SELECT FOR UPDATE) y Commit/Rollback.
type RegistrarMovimientoUseCase struct {
	txRunner     TxRunner
	productoRepo repository.ProductoRepository
	bodegaRepo   repository.BodegaRepository
}

// NewRegistrarMovimientoUseCase construye el caso de uso.
func NewRegistrarMovimientoUseCase(
	txRunner TxRunner,
	productoRepo repository.ProductoRepository,
	bodegaRepo repository.BodegaRepository,
) *RegistrarMovimientoUseCase {
	return &RegistrarMovimientoUseCase{
		txRunner:     txRunner,
		productoRepo: productoRepo,
		bodegaRepo:   bodegaRepo,
	}
}

// MovimientoInput entrada para registrar un movimiento del libro.
// Para entrada/salida/retorno/baja: ProductoID, BodegaID, Tipo, Cantidad.
// Para traslado: además BodegaDestinoID distinta de la origen.
// Fecha en cero significa "ahora"; Vencimiento solo aplica a salidas retornables.
type MovimientoInput struct {
	UserID          string
	ProductoID      string
	BodegaID        string
	BodegaDestinoID string
	Tipo            string
	Cantidad        decimal.Decimal
	Responsable     string
	Referencia      string
	Nota            string
	Fecha           time.Time
	Vencimiento     *time.Time
}

// Registrar inicia una transacción, bloquea la fila de stock, aplica la lógica
// según tipo y hace Commit o Rollback. El libro es append-only: nunca modifica
// movimientos existentes, y el saldo de custodia jamás se persiste — solo se
// ajusta el contador informativo en_uso del producto.
func (uc *RegistrarMovimientoUseCase) Registrar(ctx context.Context, input MovimientoInput) error {
	if !entity.TipoMovimientoValido(input.Tipo) {
		return domain.ErrInvalidInput
	}
	if input.ProductoID == "" || input.BodegaID == "" || !input.Cantidad.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if input.Tipo == entity.MovTipoTraslado {
		if input.BodegaDestinoID == "" || input.BodegaDestinoID == input.BodegaID {
			return domain.ErrInvalidInput
		}
	}
	if input.Tipo == entity.MovTipoBaja && input.Nota == "" {
		return domain.ErrInvalidInput
	}

	producto, err := uc.productoRepo.GetByID(input.ProductoID)
	if err != nil || producto == nil {
		return domain.ErrNotFound
	}
	// Un producto retornable sale siempre a nombre de alguien; sin responsable
	// no hay a quién reclamar la devolución.
	if input.Tipo == entity.MovTipoSalida && producto.Retornable && input.Responsable == "" {
		return domain.ErrInvalidInput
	}

	bodega, err := uc.bodegaRepo.GetByID(input.BodegaID)
	if err != nil || bodega == nil {
		return domain.ErrNotFound
	}
	if input.Tipo == entity.MovTipoTraslado {
		destino, err := uc.bodegaRepo.GetByID(input.BodegaDestinoID)
		if err != nil || destino == nil {
			return domain.ErrNotFound
		}
	}

	now := time.Now()
	if input.Fecha.IsZero() {
		input.Fecha = now
	}

	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		stockRepo repository.StockRepository,
		productoRepo repository.ProductoRepository,
	) error {
		switch input.Tipo {
		case entity.MovTipoEntrada:
			return uc.doEntrada(movRepo, stockRepo, input, now)
		case entity.MovTipoSalida:
			return uc.doSalida(movRepo, stockRepo, productoRepo, producto, input, now)
		case entity.MovTipoTraslado:
			return uc.doTraslado(movRepo, stockRepo, input, now)
		case entity.MovTipoRetorno:
			return uc.doRetorno(movRepo, stockRepo, productoRepo, producto, input, now)
		case entity.MovTipoBaja:
			return uc.doBaja(movRepo, stockRepo, input, now)
		}
		return domain.ErrInvalidInput
	})
}

func nuevoMovimiento(input MovimientoInput, now time.Time) *entity.MovimientoAlmacen {
	return &entity.MovimientoAlmacen{
		ID:               uuid.New().String(),
		ProductoID:       input.ProductoID,
		BodegaID:         input.BodegaID,
		Tipo:             input.Tipo,
		Cantidad:         input.Cantidad,
		Responsable:      input.Responsable,
		Referencia:       input.Referencia,
		Nota:             input.Nota,
		Fecha:            input.Fecha,
		FechaVencimiento: input.Vencimiento,
		CreatedAt:        now,
		CreatedBy:        input.UserID,
	}
}

// doEntrada: bloquea la fila de stock, suma la cantidad, guarda el movimiento.
func (uc *RegistrarMovimientoUseCase) doEntrada(
	movRepo repository.MovimientoRepository,
	stockRepo repository.StockRepository,
	input MovimientoInput,
	now time.Time,
) error {
	stock, err := stockRepo.GetForUpdate(input.ProductoID, input.BodegaID)
	if err != nil {
		return err
	}
	stock.Cantidad = stock.Cantidad.Add(input.Cantidad)
	stock.UpdatedAt = now
	if err := stockRepo.Upsert(stock); err != nil {
		return err
	}
	return movRepo.Create(nuevoMovimiento(input, now))
}

// doSalida: verifica stock suficiente, resta, guarda el movimiento con
// responsable y vencimiento, y ajusta el contador en_uso si es retornable.
func (uc *RegistrarMovimientoUseCase) doSalida(
	movRepo repository.MovimientoRepository,
	stockRepo repository.StockRepository,
	productoRepo repository.ProductoRepository,
	producto *entity.Producto,
	input MovimientoInput,
	now time.Time,
) error {
	stock, err := stockRepo.GetForUpdate(input.ProductoID, input.BodegaID)
	if err != nil {
		return err
	}
	if stock.Cantidad.LessThan(input.Cantidad) {
		return domain.ErrInsufficientStock
	}
	stock.Cantidad = stock.Cantidad.Sub(input.Cantidad)
	stock.UpdatedAt = now
	if err := stockRepo.Upsert(stock); err != nil {
		return err
	}
	if producto.Retornable {
		if err := productoRepo.UpdateEnUso(input.ProductoID, input.Cantidad); err != nil {
			return err
		}
	}
	return movRepo.Create(nuevoMovimiento(input, now))
}

// doRetorno: devuelve unidades a la bodega y descuenta el contador en_uso.
// No valida contra el saldo derivado: una sobre-devolución queda en el libro y
// la reconciliación la filtra como saldo <= 0 en la siguiente pasada.
func (uc *RegistrarMovimientoUseCase) doRetorno(
	movRepo repository.MovimientoRepository,
	stockRepo repository.StockRepository,
	productoRepo repository.ProductoRepository,
	producto *entity.Producto,
	input MovimientoInput,
	now time.Time,
) error {
	stock, err := stockRepo.GetForUpdate(input.ProductoID, input.BodegaID)
	if err != nil {
		return err
	}
	stock.Cantidad = stock.Cantidad.Add(input.Cantidad)
	stock.UpdatedAt = now
	if err := stockRepo.Upsert(stock); err != nil {
		return err
	}
	if producto.Retornable {
		if err := productoRepo.UpdateEnUso(input.ProductoID, input.Cantidad.Neg()); err != nil {
			return err
		}
	}
	return movRepo.Create(nuevoMovimiento(input, now))
}

// doBaja: resta definitivamente de la bodega; la nota es obligatoria.
func (uc *RegistrarMovimientoUseCase) doBaja(
	movRepo repository.MovimientoRepository,
	stockRepo repository.StockRepository,
	input MovimientoInput,
	now time.Time,
) error {
	stock, err := stockRepo.GetForUpdate(input.ProductoID, input.BodegaID)
	if err != nil {
		return err
	}
	if stock.Cantidad.LessThan(input.Cantidad) {
		return domain.ErrInsufficientStock
	}
	stock.Cantidad = stock.Cantidad.Sub(input.Cantidad)
	stock.UpdatedAt = now
	if err := stockRepo.Upsert(stock); err != nil {
		return err
	}
	return movRepo.Create(nuevoMovimiento(input, now))
}

// doTraslado: resta de bodega origen, suma en destino, misma transacción;
// guarda dos registros tipo traslado en el libro, uno por cada bodega.
func (uc *RegistrarMovimientoUseCase) doTraslado(
	movRepo repository.MovimientoRepository,
	stockRepo repository.StockRepository,
	input MovimientoInput,
	now time.Time,
) error {
	origen, err := stockRepo.GetForUpdate(input.ProductoID, input.BodegaID)
	if err != nil {
		return err
	}
	if origen.Cantidad.LessThan(input.Cantidad) {
		return domain.ErrInsufficientStock
	}
	// Get devuelve fila en cero si no existe; un error aquí es real y aborta.
	destino, err := stockRepo.Get(input.ProductoID, input.BodegaDestinoID)
	if err != nil {
		return err
	}
	origen.Cantidad = origen.Cantidad.Sub(input.Cantidad)
	destino.Cantidad = destino.Cantidad.Add(input.Cantidad)
	origen.UpdatedAt = now
	destino.UpdatedAt = now
	if err := stockRepo.Upsert(origen); err != nil {
		return err
	}
	if err := stockRepo.Upsert(destino); err != nil {
		return err
	}

	salida := nuevoMovimiento(input, now)
	salida.BodegaDestinoID = input.BodegaDestinoID
	if err := movRepo.Create(salida); err != nil {
		return err
	}
	entrada := nuevoMovimiento(input, now)
	entrada.BodegaID = input.BodegaDestinoID
	entrada.Referencia = "traslado desde " + input.BodegaID
	return movRepo.Create(entrada)
}

// RegistrarFromRequest adapta el request HTTP al caso de uso: valida el tipo en
// la frontera y normaliza las fechas heterogéneas con pkg/fechas.
func (uc *RegistrarMovimientoUseCase) RegistrarFromRequest(ctx context.Context, userID string, in dto.RegistrarMovimientoRequest) error {
	input := MovimientoInput{
		UserID:          userID,
		ProductoID:      in.ProductoID,
		BodegaID:        in.BodegaID,
		BodegaDestinoID: in.BodegaDestinoID,
		Tipo:            in.Tipo,
		Cantidad:        in.Cantidad.Decimal,
		Responsable:     in.Responsable,
		Referencia:      in.Referencia,
		Nota:            in.Nota,
	}
	if f := fechas.Parse(in.Fecha); f.Valida() {
		input.Fecha = f.Time()
	}
	if v := fechas.Parse(in.FechaVencimiento); v.Valida() {
		t := v.Time()
		input.Vencimiento = &t
	}
	return uc.Registrar(ctx, input)
}
