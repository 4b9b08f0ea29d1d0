package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/flotagest/internal/application/dto"
	"github.com/tu-usuario/flotagest/internal/application/reportes"
	"github.com/tu-usuario/flotagest/internal/domain"
)

// ReportesHandler genera reportes descargables de consumos (PDF) y
// movimientos de almacén (Excel).
type ReportesHandler struct {
	uc *reportes.ReportesUseCase
}

// NewReportesHandler construye el handler.
func NewReportesHandler(uc *reportes.ReportesUseCase) *ReportesHandler {
	return &ReportesHandler{uc: uc}
}

// ConsumosPDF godoc
// @Summary      Reporte PDF de consumos de combustible
// @Description  Sin parámetros toma el mes en curso. Las fechas admiten los formatos flexibles.
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Param        desde  query  string  false  "Fecha inicial"
// @Param        hasta  query  string  false  "Fecha final"
// @Success      200    {file}    file
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/reportes/consumos.pdf [get]
func (h *ReportesHandler) ConsumosPDF(c *fiber.Ctx) error {
	in := dto.RangoFechasRequest{Desde: c.Query("desde"), Hasta: c.Query("hasta")}
	pdf, filename, err := h.uc.ConsumosPDF(c.Context(), in)
	if err != nil {
		return mapReporteError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(pdf)
}

// MovimientosExcel godoc
// @Summary      Exportación Excel de movimientos de almacén
// @Description  Sin parámetros toma el mes en curso. Las fechas admiten los formatos flexibles.
// @Tags         reportes
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        desde  query  string  false  "Fecha inicial"
// @Param        hasta  query  string  false  "Fecha final"
// @Success      200    {file}    file
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/reportes/movimientos.xlsx [get]
func (h *ReportesHandler) MovimientosExcel(c *fiber.Ctx) error {
	in := dto.RangoFechasRequest{Desde: c.Query("desde"), Hasta: c.Query("hasta")}
	xlsx, filename, err := h.uc.MovimientosExcel(c.Context(), in)
	if err != nil {
		return mapReporteError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(xlsx)
}

func mapReporteError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
