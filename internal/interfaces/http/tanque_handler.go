package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/flotagest/internal/application/combustible"
	"github.com/tu-usuario/flotagest/internal/application/dto"
	"github.com/tu-usuario/flotagest/internal/application/usecase"
	"github.com/tu-usuario/flotagest/internal/domain"
)

// TanqueHandler maneja las peticiones HTTP de tanques de combustible,
// incluida la recarga transaccional.
type TanqueHandler struct {
	uc      *usecase.TanqueUseCase
	recarga *combustible.RecargarTanqueUseCase
}

// NewTanqueHandler construye el handler.
func NewTanqueHandler(uc *usecase.TanqueUseCase, recarga *combustible.RecargarTanqueUseCase) *TanqueHandler {
	return &TanqueHandler{uc: uc, recarga: recarga}
}

// Create godoc
// @Summary      Crear tanque
// @Tags         tanques
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTanqueRequest  true  "Datos del tanque"
// @Success      201   {object}  dto.TanqueResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tanques [post]
func (h *TanqueHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTanqueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener tanque por ID
// @Tags         tanques
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tanque"
// @Success      200  {object}  dto.TanqueResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tanques/{id} [get]
func (h *TanqueHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tanque no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar tanque
// @Tags         tanques
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del tanque"
// @Param        body  body  dto.UpdateTanqueRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.TanqueResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tanques/{id} [put]
func (h *TanqueHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTanqueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tanque no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar tanques
// @Tags         tanques
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.TanqueListResponse
// @Router       /api/tanques [get]
func (h *TanqueHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListCriticos godoc
// @Summary      Listar tanques en nivel crítico
// @Tags         tanques
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TanqueResponse
// @Router       /api/tanques/criticos [get]
func (h *TanqueHandler) ListCriticos(c *fiber.Ctx) error {
	out, err := h.uc.ListCriticos()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Recargar godoc
// @Summary      Recargar tanque
// @Description  Suma litros al nivel del tanque sin exceder su capacidad.
// @Tags         tanques
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del tanque"
// @Param        body  body  dto.RecargaTanqueRequest  true  "Litros a recargar"
// @Success      200   {object}  dto.TanqueResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tanques/{id}/recargas [post]
func (h *TanqueHandler) Recargar(c *fiber.Ctx) error {
	var in dto.RecargaTanqueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	tanque, err := h.recarga.Recargar(c.Context(), c.Params("id"), in.Litros.Decimal)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tanque no encontrado"})
		case errors.Is(err, domain.ErrCapacidadExcedida):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CAPACIDAD_EXCEDIDA", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.TanqueResponse{
		ID:              tanque.ID,
		Nombre:          tanque.Nombre,
		TipoCombustible: tanque.TipoCombustible,
		Capacidad:       tanque.Capacidad,
		Nivel:           tanque.Nivel,
		UmbralCritico:   tanque.UmbralCritico,
		EnNivelCritico:  tanque.EnNivelCritico(),
		Ubicacion:       tanque.Ubicacion,
		CreatedAt:       tanque.CreatedAt,
		UpdatedAt:       tanque.UpdatedAt,
	})
}

// Delete godoc
// @Summary      Eliminar tanque
// @Tags         tanques
// @Security     Bearer
// @Param        id   path  string  true  "ID del tanque"
// @Success      200  {object}  dto.MensajeResponse
// @Router       /api/tanques/{id} [delete]
func (h *TanqueHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MensajeResponse{Message: "tanque eliminado"})
}
