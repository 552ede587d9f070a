package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/botica-api/internal/application/dto"
	"github.com/jhoicas/botica-api/internal/domain"
	"github.com/jhoicas/botica-api/internal/domain/entity"
	"github.com/jhoicas/botica-api/internal/domain/repository"
	"github.com/jhoicas/botica-api/pkg/logger"
)

// DefaultMinStock mínimo de stock cuando el formulario no lo envía.
const DefaultMinStock = 5

// ProductUseCase casos de uso del inventario de medicamentos.
type ProductUseCase struct {
	repo repository.ProductRepository
	log  *logger.Logger
	now  func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, log *logger.Logger) *ProductUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductUseCase{repo: repo, log: log.Component("inventario"), now: time.Now}
}

// AddStock reabastece o crea un medicamento.
// Con el mismo nombre y laboratorio suma la cantidad y reemplaza costo, precio,
// presentación y mínimo por los recibidos; si no existe lo crea con ese stock inicial.
func (uc *ProductUseCase) AddStock(ctx context.Context, in dto.AddStockRequest) (*dto.AddStockResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Lab = strings.TrimSpace(in.Lab)
	if in.Name == "" || in.Stock <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Cost.IsNegative() || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	minStock := DefaultMinStock
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		minStock = *in.MinStock
	}

	now := uc.now()
	existing, err := uc.repo.GetByNameAndLab(ctx, in.Name, in.Lab)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Stock += in.Stock
		existing.Cost = in.Cost
		existing.Price = in.Price
		existing.MinStock = minStock
		if in.Content != "" {
			existing.Content = in.Content
		}
		existing.UpdatedAt = now
		if err := uc.repo.Update(ctx, existing); err != nil {
			return nil, err
		}
		uc.log.Info().Str("medicamento", existing.Name).Int("agregado", in.Stock).Int("stock", existing.Stock).Msg("stock reabastecido")
		return &dto.AddStockResponse{Product: *toProductResponse(existing), Created: false}, nil
	}

	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Lab:       in.Lab,
		Content:   in.Content,
		Cost:      in.Cost,
		Price:     in.Price,
		Stock:     in.Stock,
		MinStock:  minStock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	uc.log.Info().Str("medicamento", product.Name).Int("stock", product.Stock).Msg("medicamento creado")
	return &dto.AddStockResponse{Product: *toProductResponse(product), Created: true}, nil
}

// GetByID obtiene un medicamento por ID. Devuelve ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update edita un medicamento en su lugar (stock, costo, precio, mínimo, etc.).
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if in.Lab != nil {
		product.Lab = strings.TrimSpace(*in.Lab)
	}
	if in.Content != nil {
		product.Content = *in.Content
	}
	if in.Cost != nil {
		if in.Cost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Cost = *in.Cost
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinStock = *in.MinStock
	}
	product.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve el inventario completo ordenado por nombre.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items}, nil
}

// LowStock devuelve los medicamentos con stock por debajo del mínimo.
func (uc *ProductUseCase) LowStock(ctx context.Context) ([]dto.LowStockItemDTO, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return LowStockItems(list), nil
}

// Delete elimina un medicamento. Las ventas registradas no se tocan.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// LowStockItems filtra los medicamentos en alerta, en el orden recibido.
func LowStockItems(list []*entity.Product) []dto.LowStockItemDTO {
	out := make([]dto.LowStockItemDTO, 0)
	for _, p := range list {
		if p.IsLowStock() {
			out = append(out, dto.LowStockItemDTO{ID: p.ID, Name: p.Name, Stock: p.Stock, MinStock: p.MinStock})
		}
	}
	return out
}

// StockValue Σ stock × costo del inventario.
func StockValue(list []*entity.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range list {
		total = total.Add(p.StockValue())
	}
	return total
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Lab:       p.Lab,
		Content:   p.Content,
		Cost:      p.Cost,
		Price:     p.Price,
		Stock:     p.Stock,
		MinStock:  p.MinStock,
		LowStock:  p.IsLowStock(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
