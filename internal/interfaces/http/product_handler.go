package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/botica-api/internal/application/dto"
)

// ProductService inventario de medicamentos (lo implementa *usecase.ProductUseCase).
type ProductService interface {
	AddStock(ctx context.Context, in dto.AddStockRequest) (*dto.AddStockResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ProductResponse, error)
	Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error)
	List(ctx context.Context) (*dto.ProductListResponse, error)
	LowStock(ctx context.Context) ([]dto.LowStockItemDTO, error)
	Delete(ctx context.Context, id string) error
}

// ProductHandler maneja las peticiones HTTP de medicamentos (protegido).
type ProductHandler struct {
	uc ProductService
}

// NewProductHandler construye el handler.
func NewProductHandler(uc ProductService) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// AddStock godoc
// @Summary      Agregar stock (crea el medicamento si no existe con ese nombre y laboratorio)
// @Tags         medicamentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddStockRequest  true  "Datos del medicamento"
// @Success      201   {object}  dto.AddStockResponse
// @Success      200   {object}  dto.AddStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/medicamentos [post]
func (h *ProductHandler) AddStock(c *fiber.Ctx) error {
	var in dto.AddStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Name == "" || in.Stock <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre y stock positivo son requeridos"})
	}
	out, err := h.uc.AddStock(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	status := fiber.StatusOK
	if out.Created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(out)
}

// GetByID godoc
// @Summary      Obtener medicamento por ID
// @Tags         medicamentos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del medicamento"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/medicamentos/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar inventario
// @Tags         medicamentos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/medicamentos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Medicamentos con stock por debajo del mínimo
// @Tags         medicamentos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LowStockItemDTO
// @Router       /api/medicamentos/low-stock [get]
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar medicamento (stock, costo, precio, mínimo)
// @Tags         medicamentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del medicamento"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/medicamentos/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar medicamento
// @Tags         medicamentos
// @Security     Bearer
// @Param        id   path  string  true  "ID del medicamento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/medicamentos/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
