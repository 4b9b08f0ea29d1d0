package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/flotagest/internal/application/dto"
	"github.com/tu-usuario/flotagest/internal/application/usecase"
	"github.com/tu-usuario/flotagest/pkg/fechas"
)

// AuditoriaHandler expone el registro de auditoría. Solo admin.
type AuditoriaHandler struct {
	uc *usecase.AuditoriaUseCase
}

// NewAuditoriaHandler construye el handler.
func NewAuditoriaHandler(uc *usecase.AuditoriaUseCase) *AuditoriaHandler {
	return &AuditoriaHandler{uc: uc}
}

// List godoc
// @Summary      Consultar registro de auditoría
// @Tags         auditoria
// @Security     Bearer
// @Produce      json
// @Param        entidad  query  string  false  "Filtrar por entidad (vehiculo, tanque, producto, ...)"
// @Param        desde    query  string  false  "Fecha inicial (formatos flexibles)"
// @Param        hasta    query  string  false  "Fecha final (formatos flexibles)"
// @Param        limit    query  int     false  "Límite"  default(20)
// @Param        offset   query  int     false  "Offset"  default(0)
// @Success      200      {object}  dto.AuditoriaListResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Router       /api/auditoria [get]
func (h *AuditoriaHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)

	var from, to *time.Time
	if desde := c.Query("desde"); desde != "" {
		f := fechas.Parse(desde)
		if !f.Valida() {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha desde inválida"})
		}
		t := f.Time()
		from = &t
	}
	if hasta := c.Query("hasta"); hasta != "" {
		h := fechas.Parse(hasta)
		if !h.Valida() {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha hasta inválida"})
		}
		ht := h.Time()
		ht = time.Date(ht.Year(), ht.Month(), ht.Day(), 23, 59, 59, 0, ht.Location())
		to = &ht
	}

	out, err := h.uc.List(c.Query("entidad"), from, to, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
