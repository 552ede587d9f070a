package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/botica-api/internal/application/dto"
)

// SaleService registro y consulta de ventas (lo implementa *sales.RegisterSaleUseCase).
type SaleService interface {
	Register(ctx context.Context, userID string, in dto.RegisterSaleRequest) (*dto.SaleResponse, error)
	List(ctx context.Context, from, to *time.Time) (*dto.SaleListResponse, error)
}

// SaleHandler maneja las ventas (protegido).
type SaleHandler struct {
	uc  SaleService
	loc *time.Location
}

// NewSaleHandler construye el handler. loc es la zona de la botica para los filtros por fecha.
func NewSaleHandler(uc SaleService, loc *time.Location) *SaleHandler {
	if loc == nil {
		loc = time.Local
	}
	return &SaleHandler{uc: uc, loc: loc}
}

// Register godoc
// @Summary      Registrar venta (descuenta stock)
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterSaleRequest  true  "medicamento_id, cantidad, forma_pago"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *SaleHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Register(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas (más recientes primero)
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        desde  query  string  false  "Desde (YYYY-MM-DD, incluido)"
// @Param        hasta  query  string  false  "Hasta (YYYY-MM-DD, incluido)"
// @Success      200    {object}  dto.SaleListResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/ventas [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	from, to, err := h.dateRange(c.Query("desde"), c.Query("hasta"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "desde y hasta deben ser YYYY-MM-DD y enviarse juntos"})
	}
	out, err := h.uc.List(c.UserContext(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// dateRange convierte días inclusivos a [desde 00:00, hasta+1 00:00).
func (h *SaleHandler) dateRange(desde, hasta string) (*time.Time, *time.Time, error) {
	if desde == "" && hasta == "" {
		return nil, nil, nil
	}
	from, err := time.ParseInLocation("2006-01-02", desde, h.loc)
	if err != nil {
		return nil, nil, err
	}
	last, err := time.ParseInLocation("2006-01-02", hasta, h.loc)
	if err != nil {
		return nil, nil, err
	}
	to := last.AddDate(0, 0, 1)
	return &from, &to, nil
}
