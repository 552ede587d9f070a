package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/botica-api/internal/domain/entity"
	"github.com/jhoicas/botica-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, fecha, medicamento_id, nombre, lab, cantidad, precio_unitario, costo_unitario,
	total_venta, costo_total, ganancia, forma_pago, registrado_por, created_at`

// SaleRepo implementación de SaleRepository sobre la tabla ventas (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta la venta con sus totales ya calculados.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	query := `
		INSERT INTO ventas (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Date, s.ProductID, s.Name, s.Lab, s.Quantity, s.UnitPrice, s.UnitCost,
		s.TotalRevenue, s.TotalCost, s.Profit, s.PaymentMethod, s.RegisteredBy, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// List devuelve todas las ventas ordenadas por fecha descendente.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	return r.list(ctx, `SELECT `+saleColumns+` FROM ventas ORDER BY fecha DESC`)
}

// ListBetween devuelve las ventas en [from, to) ordenadas por fecha descendente.
func (r *SaleRepo) ListBetween(ctx context.Context, from, to time.Time) ([]*entity.Sale, error) {
	return r.list(ctx,
		`SELECT `+saleColumns+` FROM ventas WHERE fecha >= $1 AND fecha < $2 ORDER BY fecha DESC`,
		from, to,
	)
}

func (r *SaleRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.Date, &s.ProductID, &s.Name, &s.Lab, &s.Quantity, &s.UnitPrice, &s.UnitCost,
			&s.TotalRevenue, &s.TotalCost, &s.Profit, &s.PaymentMethod, &s.RegisteredBy, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
