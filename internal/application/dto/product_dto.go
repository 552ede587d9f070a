package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddStockRequest entrada de la pantalla de inventario: si ya existe un medicamento con
// el mismo nombre y laboratorio se suma el stock, si no se crea.
type AddStockRequest struct {
	Name     string          `json:"nombre"`
	Lab      string          `json:"lab"`
	Content  string          `json:"contenido"`
	Cost     decimal.Decimal `json:"costo"`
	Price    decimal.Decimal `json:"precio"`
	Stock    int             `json:"stock"`
	MinStock *int            `json:"min_stock"`
}

// UpdateProductRequest edición en línea de un medicamento (todos opcionales).
type UpdateProductRequest struct {
	Name     *string          `json:"nombre"`
	Lab      *string          `json:"lab"`
	Content  *string          `json:"contenido"`
	Cost     *decimal.Decimal `json:"costo"`
	Price    *decimal.Decimal `json:"precio"`
	Stock    *int             `json:"stock"`
	MinStock *int             `json:"min_stock"`
}

// ProductResponse salida de un medicamento.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"nombre"`
	Lab       string          `json:"lab"`
	Content   string          `json:"contenido"`
	Cost      decimal.Decimal `json:"costo"`
	Price     decimal.Decimal `json:"precio"`
	Stock     int             `json:"stock"`
	MinStock  int             `json:"min_stock"`
	LowStock  bool            `json:"stock_bajo"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse inventario completo (sin paginación: una sede, pocos cientos de ítems).
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}

// AddStockResponse indica si el medicamento se creó o se reabasteció.
type AddStockResponse struct {
	Product ProductResponse `json:"medicamento"`
	Created bool            `json:"creado"`
}
