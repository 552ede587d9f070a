package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/botica-api/internal/application/dto"
)

// ReportService reportes por período (lo implementa *analytics.ReportUseCase).
type ReportService interface {
	Generate(ctx context.Context, kind, anchor string) (*dto.ReportResponse, error)
	PDF(ctx context.Context, kind, anchor string) ([]byte, string, error)
}

// ReportHandler maneja los reportes financieros.
type ReportHandler struct {
	uc ReportService
}

// NewReportHandler construye el handler.
func NewReportHandler(uc ReportService) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Get godoc
// @Summary      Reporte diario, semanal, mensual o anual
// @Description  Totales, cuadre efectivo/transferencia, top 5 productos y ventas del período.
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        tipo   query  string  true   "daily | weekly | monthly | yearly"
// @Param        fecha  query  string  false  "YYYY-MM-DD (YYYY-MM para mensual, YYYY para anual). Default: hoy."
// @Success      200    {object}  dto.ReportResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/reportes [get]
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Generate(c.UserContext(), c.Query("tipo"), c.Query("fecha"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Exportar reporte a PDF
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Param        tipo   query  string  true   "daily | weekly | monthly | yearly"
// @Param        fecha  query  string  false  "Fecha ancla"
// @Success      200
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/reportes/pdf [get]
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	b, name, err := h.uc.PDF(c.UserContext(), c.Query("tipo"), c.Query("fecha"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Send(b)
}
