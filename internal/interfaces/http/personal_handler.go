package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/flotagest/internal/application/dto"
	"github.com/tu-usuario/flotagest/internal/application/usecase"
	"github.com/tu-usuario/flotagest/internal/domain"
)

// PersonalHandler maneja el directorio de personal (conductores, bodegueros,
// mecánicos).
type PersonalHandler struct {
	uc *usecase.PersonalUseCase
}

// NewPersonalHandler construye el handler.
func NewPersonalHandler(uc *usecase.PersonalUseCase) *PersonalHandler {
	return &PersonalHandler{uc: uc}
}

// Create godoc
// @Summary      Crear persona
// @Tags         personal
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePersonalRequest  true  "Datos de la persona"
// @Success      201   {object}  dto.PersonalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/personal [post]
func (h *PersonalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePersonalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DOCUMENTO_EXISTS", Message: "ya existe una persona con ese documento"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener persona por ID
// @Tags         personal
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la persona"
// @Success      200  {object}  dto.PersonalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/personal/{id} [get]
func (h *PersonalHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "persona no encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar persona
// @Tags         personal
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la persona"
// @Param        body  body  dto.UpdatePersonalRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.PersonalResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/personal/{id} [put]
func (h *PersonalHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePersonalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "persona no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar personal
// @Tags         personal
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.PersonalListResponse
// @Router       /api/personal [get]
func (h *PersonalHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar persona
// @Tags         personal
// @Security     Bearer
// @Param        id   path  string  true  "ID de la persona"
// @Success      200  {object}  dto.MensajeResponse
// @Router       /api/personal/{id} [delete]
func (h *PersonalHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MensajeResponse{Message: "persona eliminada"})
}
