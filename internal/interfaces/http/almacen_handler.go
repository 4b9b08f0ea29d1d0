package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/flotagest/internal/application/almacen"
	"github.com/tu-usuario/flotagest/internal/application/dto"
	"github.com/tu-usuario/flotagest/internal/domain"
)

// AlmacenHandler maneja el libro de movimientos de almacén, las asignaciones
// de custodia derivadas y las devoluciones.
type AlmacenHandler struct {
	registrar    *almacen.RegistrarMovimientoUseCase
	asignaciones *almacen.AsignacionesUseCase
}

// NewAlmacenHandler construye el handler.
func NewAlmacenHandler(registrar *almacen.RegistrarMovimientoUseCase, asignaciones *almacen.AsignacionesUseCase) *AlmacenHandler {
	return &AlmacenHandler{registrar: registrar, asignaciones: asignaciones}
}

// RegistrarMovimiento godoc
// @Summary      Registrar movimiento de almacén
// @Description  Anexa una entrada, salida, traslado, retorno o baja al libro y ajusta el stock en una transacción.
// @Tags         almacen
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMovimientoRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.MensajeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/almacen/movimientos [post]
func (h *AlmacenHandler) RegistrarMovimiento(c *fiber.Ctx) error {
	var in dto.RegistrarMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.registrar.RegistrarFromRequest(c.Context(), GetUserID(c), in); err != nil {
		return mapMovimientoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensajeResponse{Message: "movimiento registrado"})
}

// Asignaciones godoc
// @Summary      Asignaciones de custodia activas de un producto
// @Description  Reconcilia el libro completo del producto y devuelve los saldos pendientes por responsable, en orden descendente.
// @Tags         almacen
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.AsignacionesResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/almacen/productos/{id}/asignaciones [get]
func (h *AlmacenHandler) Asignaciones(c *fiber.Ctx) error {
	out, err := h.asignaciones.Activas(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Historial godoc
// @Summary      Historial de movimientos de un producto
// @Tags         almacen
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.MovimientoListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/almacen/productos/{id}/movimientos [get]
func (h *AlmacenHandler) Historial(c *fiber.Ctx) error {
	out, err := h.asignaciones.Historial(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RegistrarDevolucion godoc
// @Summary      Registrar devolución de una asignación
// @Description  Anexa un movimiento retorno con el responsable y la cantidad de la asignación seleccionada.
// @Tags         almacen
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarDevolucionRequest  true  "Datos de la devolución"
// @Success      201   {object}  dto.MensajeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/almacen/devoluciones [post]
func (h *AlmacenHandler) RegistrarDevolucion(c *fiber.Ctx) error {
	var in dto.RegistrarDevolucionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.asignaciones.RegistrarDevolucion(c.Context(), GetUserID(c), in); err != nil {
		return mapMovimientoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensajeResponse{Message: "devolución registrada"})
}

// mapMovimientoError traduce los errores de dominio del libro de movimientos
// a respuestas HTTP.
func mapMovimientoError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o bodega no encontrados"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STOCK_INSUFICIENTE", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
