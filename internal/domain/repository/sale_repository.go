package repository

import (
	"context"
	"time"

	"github.com/jhoicas/botica-api/internal/domain/entity"
)

// SaleRepository persistencia de ventas. Las ventas no se modifican ni se borran.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	// List devuelve todas las ventas, las más recientes primero.
	List(ctx context.Context) ([]*entity.Sale, error)
	// ListBetween devuelve las ventas con from <= fecha < to, las más recientes primero.
	ListBetween(ctx context.Context, from, to time.Time) ([]*entity.Sale, error)
}
