package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterSaleRequest entrada para registrar una venta.
type RegisterSaleRequest struct {
	ProductID     string `json:"medicamento_id"`
	Quantity      int    `json:"cantidad"`
	PaymentMethod string `json:"forma_pago"` // Efectivo | Transferencia
}

// SaleResponse salida de una venta (valores congelados al momento de la venta).
type SaleResponse struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"fecha"`
	ProductID     string          `json:"medicamento_id"`
	Name          string          `json:"nombre"`
	Lab           string          `json:"lab"`
	Quantity      int             `json:"cantidad"`
	UnitPrice     decimal.Decimal `json:"precio_unitario"`
	UnitCost      decimal.Decimal `json:"costo_unitario"`
	TotalRevenue  decimal.Decimal `json:"total_venta"`
	TotalCost     decimal.Decimal `json:"costo_total"`
	Profit        decimal.Decimal `json:"ganancia"`
	PaymentMethod string          `json:"forma_pago"`
	RegisteredBy  *string         `json:"registrado_por"`
}

// SaleListResponse listado de ventas, más recientes primero.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
}
