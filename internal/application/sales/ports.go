package sales

import (
	"context"

	"github.com/jhoicas/botica-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción; si fn devuelve error se hace Rollback.
// Los repositorios recibidos quedan atados a la transacción.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// ChangeNotifier se avisa después de cada venta confirmada (p. ej. invalidar reportes).
type ChangeNotifier interface {
	Invalidate(ctx context.Context)
}
