package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/flotagest/internal/application/combustible"
	"github.com/tu-usuario/flotagest/internal/application/dto"
	"github.com/tu-usuario/flotagest/internal/domain"
)

// ConsumoHandler maneja el registro y la consulta de cargas de combustible.
type ConsumoHandler struct {
	registrar *combustible.RegistrarConsumoUseCase
	consultar *combustible.ConsultarConsumosUseCase
}

// NewConsumoHandler construye el handler.
func NewConsumoHandler(registrar *combustible.RegistrarConsumoUseCase, consultar *combustible.ConsultarConsumosUseCase) *ConsumoHandler {
	return &ConsumoHandler{registrar: registrar, consultar: consultar}
}

// Registrar godoc
// @Summary      Registrar consumo de combustible
// @Description  Descuenta el nivel del tanque y registra la carga en una sola transacción.
// @Tags         consumos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarConsumoRequest  true  "Datos del consumo"
// @Success      201   {object}  dto.ConsumoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/consumos [post]
func (h *ConsumoHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarConsumoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	consumo, err := h.registrar.RegistrarFromRequest(c.Context(), GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vehículo o tanque no encontrado"})
		case errors.Is(err, domain.ErrNivelInsuficiente):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NIVEL_INSUFICIENTE", Message: err.Error()})
		case errors.Is(err, domain.ErrOdometroRetrocede):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ODOMETRO", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(combustible.ToConsumoResponse(consumo))
}

// ListByVehiculo godoc
// @Summary      Historial de consumos de un vehículo
// @Tags         consumos
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del vehículo"
// @Param        desde   query  string  false  "Fecha inicial (formatos flexibles)"
// @Param        hasta   query  string  false  "Fecha final (formatos flexibles)"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.ConsumoListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/vehiculos/{id}/consumos [get]
func (h *ConsumoHandler) ListByVehiculo(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.consultar.ListByVehiculo(c.Context(), c.Params("id"), c.Query("desde"), c.Query("hasta"), limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vehículo no encontrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
