package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	// Alerta de inventario bajo (stock < min_stock)
	LowStock []LowStockItemDTO `json:"stock_bajo"`

	StockValue  decimal.Decimal `json:"valor_inventario"` // Σ stock × costo
	TotalSales  decimal.Decimal `json:"ventas_totales"`   // histórico
	TotalProfit decimal.Decimal `json:"ganancia_total"`   // histórico

	// Resumen de hoy (00:00 – 24:00 en la zona de la botica)
	TodaySales  decimal.Decimal `json:"ventas_hoy"`
	TodayProfit decimal.Decimal `json:"ganancia_hoy"`

	DateLabel string `json:"fecha"` // ej: "14/10/2026"
}

// LowStockItemDTO medicamento por debajo del mínimo.
type LowStockItemDTO struct {
	ID       string `json:"id"`
	Name     string `json:"nombre"`
	Stock    int    `json:"stock"`
	MinStock int    `json:"min_stock"`
}
