package sales

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/botica-api/internal/application/dto"
	"github.com/jhoicas/botica-api/internal/domain"
	"github.com/jhoicas/botica-api/internal/domain/entity"
	"github.com/jhoicas/botica-api/internal/domain/repository"
	"github.com/jhoicas/botica-api/pkg/logger"
)

// RegisterSaleUseCase registra una venta y descuenta el stock en una sola transacción.
type RegisterSaleUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
	notifier ChangeNotifier
	log      *logger.Logger
	now      func() time.Time
}

// NewRegisterSaleUseCase construye el caso de uso. notifier puede ser nil.
func NewRegisterSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository, notifier ChangeNotifier, log *logger.Logger) *RegisterSaleUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &RegisterSaleUseCase{
		txRunner: txRunner,
		saleRepo: saleRepo,
		notifier: notifier,
		log:      log.Component("ventas"),
		now:      time.Now,
	}
}

// Register valida la entrada, bloquea el medicamento, verifica stock, guarda la venta
// con los valores vigentes del medicamento y descuenta la cantidad vendida.
func (uc *RegisterSaleUseCase) Register(ctx context.Context, userID string, in dto.RegisterSaleRequest) (*dto.SaleResponse, error) {
	in.ProductID = strings.TrimSpace(in.ProductID)
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.IsKnownPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidPaymentMethod
	}
	var registeredBy *string
	if userID != "" {
		registeredBy = &userID
	}

	var sale *entity.Sale
	err := uc.txRunner.RunSale(ctx, func(productRepo repository.ProductRepository, saleRepo repository.SaleRepository) error {
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.Stock < in.Quantity {
			return domain.ErrInsufficientStock
		}

		sale = entity.NewSale(uuid.New().String(), product, in.Quantity, in.PaymentMethod, registeredBy, uc.now())
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}
		return productRepo.UpdateStock(ctx, product.ID, product.Stock-in.Quantity)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("medicamento", sale.Name).
		Int("cantidad", sale.Quantity).
		Str("forma_pago", sale.PaymentMethod).
		Str("total", sale.TotalRevenue.String()).
		Msg("venta registrada")
	if uc.notifier != nil {
		uc.notifier.Invalidate(ctx)
	}
	return ToSaleResponse(sale), nil
}

// List devuelve las ventas más recientes primero; con from y to limita a [from, to).
func (uc *RegisterSaleUseCase) List(ctx context.Context, from, to *time.Time) (*dto.SaleListResponse, error) {
	var (
		list []*entity.Sale
		err  error
	)
	switch {
	case from != nil && to != nil:
		if !to.After(*from) {
			return nil, domain.ErrInvalidInput
		}
		list, err = uc.saleRepo.ListBetween(ctx, *from, *to)
	case from != nil || to != nil:
		return nil, domain.ErrInvalidInput
	default:
		list, err = uc.saleRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	return &dto.SaleListResponse{Items: ToSaleResponses(list)}, nil
}

// ToSaleResponse convierte la entidad a DTO.
func ToSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:            s.ID,
		Date:          s.Date,
		ProductID:     s.ProductID,
		Name:          s.Name,
		Lab:           s.Lab,
		Quantity:      s.Quantity,
		UnitPrice:     s.UnitPrice,
		UnitCost:      s.UnitCost,
		TotalRevenue:  s.TotalRevenue,
		TotalCost:     s.TotalCost,
		Profit:        s.Profit,
		PaymentMethod: s.PaymentMethod,
		RegisteredBy:  s.RegisteredBy,
	}
}

// ToSaleResponses convierte un listado; nunca devuelve nil.
func ToSaleResponses(list []*entity.Sale) []dto.SaleResponse {
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *ToSaleResponse(s))
	}
	return out
}
