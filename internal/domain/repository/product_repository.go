package repository

import (
	"context"

	"github.com/jhoicas/botica-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para medicamentos (DIP).
// Los métodos Get* devuelven (nil, nil) cuando no hay fila.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByNameAndLab(ctx context.Context, name, lab string) (*entity.Product, error)
	// GetForUpdate bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateStock(ctx context.Context, id string, stock int) error
	List(ctx context.Context) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
