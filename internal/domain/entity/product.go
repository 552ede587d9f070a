package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un medicamento del inventario (una sola sede).
// Cost y Price son los valores vigentes; las ventas guardan su propia copia.
type Product struct {
	ID        string
	Name      string
	Lab       string
	Content   string // presentación: Gotas, Jarabe, Tabletas...
	Cost      decimal.Decimal
	Price     decimal.Decimal
	Stock     int
	MinStock  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsLowStock indica si el stock está por debajo del mínimo configurado.
func (p *Product) IsLowStock() bool {
	return p.Stock < p.MinStock
}

// StockValue es el valor del stock a costo (stock × costo).
func (p *Product) StockValue() decimal.Decimal {
	return p.Cost.Mul(decimal.NewFromInt(int64(p.Stock)))
}
