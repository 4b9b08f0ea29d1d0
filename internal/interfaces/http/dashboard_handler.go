package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/flotagest/internal/application/analytics"
	"github.com/tu-usuario/flotagest/internal/application/dto"
)

// DashboardHandler expone los KPIs operativos de la pantalla principal.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen de KPIs del dashboard
// @Description  Consumo del día y del mes, top de vehículos por litros, tanques críticos, vehículos en taller y asignaciones vencidas.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
