package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportResponse respuesta de GET /api/reportes.
// Period es [Start, End): End es el primer instante que ya no pertenece al reporte.
type ReportResponse struct {
	Kind  string    `json:"tipo"`
	Title string    `json:"titulo"`
	Start time.Time `json:"desde"`
	End   time.Time `json:"hasta"`

	TotalRevenue decimal.Decimal `json:"total_venta"`
	TotalCost    decimal.Decimal `json:"costo_total"`
	TotalProfit  decimal.Decimal `json:"ganancia"`

	// Cuadre de caja y bancos
	Cash            decimal.Decimal            `json:"efectivo"`
	Transfer        decimal.Decimal            `json:"transferencia"`
	ByPaymentMethod map[string]decimal.Decimal `json:"por_forma_pago"`

	TransactionCount int             `json:"total_transacciones"`
	TopProducts      []TopProductDTO `json:"top_productos"`
	SkippedRecords   int             `json:"registros_omitidos,omitempty"`

	Sales []SaleResponse `json:"ventas"`
}

// TopProductDTO unidades vendidas de un producto en el período.
type TopProductDTO struct {
	Name     string `json:"nombre"`
	Quantity int    `json:"cantidad"`
}
