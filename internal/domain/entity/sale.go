package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formas de pago aceptadas al registrar una venta.
const (
	PaymentCash     = "Efectivo"
	PaymentTransfer = "Transferencia"
)

// IsKnownPaymentMethod valida la forma de pago al momento de crear la venta.
// Los reportes no la revalidan: suman cualquier valor histórico tal cual.
func IsKnownPaymentMethod(m string) bool {
	return m == PaymentCash || m == PaymentTransfer
}

// Sale es la foto inmutable de una venta. Nombre, laboratorio, precio y costo
// se copian del medicamento en el momento de la venta y los totales se guardan
// ya calculados, de modo que un cambio posterior de precios no altera la historia.
type Sale struct {
	ID            string
	Date          time.Time
	ProductID     string
	Name          string
	Lab           string
	Quantity      int
	UnitPrice     decimal.Decimal
	UnitCost      decimal.Decimal
	TotalRevenue  decimal.Decimal
	TotalCost     decimal.Decimal
	Profit        decimal.Decimal
	PaymentMethod string
	RegisteredBy  *string
	CreatedAt     time.Time
}

// NewSale construye la venta a partir del medicamento vigente.
// Garantiza TotalRevenue - TotalCost == Profit.
func NewSale(id string, product *Product, quantity int, paymentMethod string, registeredBy *string, at time.Time) *Sale {
	qty := decimal.NewFromInt(int64(quantity))
	revenue := product.Price.Mul(qty)
	cost := product.Cost.Mul(qty)
	return &Sale{
		ID:            id,
		Date:          at,
		ProductID:     product.ID,
		Name:          product.Name,
		Lab:           product.Lab,
		Quantity:      quantity,
		UnitPrice:     product.Price,
		UnitCost:      product.Cost,
		TotalRevenue:  revenue,
		TotalCost:     cost,
		Profit:        revenue.Sub(cost),
		PaymentMethod: paymentMethod,
		RegisteredBy:  registeredBy,
		CreatedAt:     at,
	}
}
