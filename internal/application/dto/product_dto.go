package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	UnitCost     decimal.Decimal `json:"unitCost"`
	ReorderPoint int             `json:"reorderPoint"`
}

// UpdateProductRequest entrada para actualizar un producto; los campos nil no cambian.
type UpdateProductRequest struct {
	SKU          *string          `json:"sku"`
	Name         *string          `json:"name"`
	Category     *string          `json:"category"`
	UnitCost     *decimal.Decimal `json:"unitCost"`
	ReorderPoint *int             `json:"reorderPoint"`
}

// ProductResponse salida de un producto con su stock total en todas las bodegas.
type ProductResponse struct {
	ID           int             `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	UnitCost     decimal.Decimal `json:"unitCost"`
	ReorderPoint int             `json:"reorderPoint"`
	TotalStock   int             `json:"totalStock"`
	StockStatus  string          `json:"stockStatus"`
}
