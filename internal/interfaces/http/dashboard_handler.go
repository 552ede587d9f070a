package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/botica-api/internal/application/dto"
)

// DashboardService resumen de la pantalla principal (lo implementa *analytics.DashboardUseCase).
type DashboardService interface {
	Summary(ctx context.Context) (*dto.DashboardSummaryDTO, error)
}

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc DashboardService
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc DashboardService) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve alertas de stock, valor del inventario, totales históricos y ventas de hoy.
// GET /api/dashboard/summary
//
// No requiere parámetros; "hoy" se calcula en el servidor con la zona de la botica.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
