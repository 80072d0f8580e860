package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo. El stock vive en StockLevel, por bodega.
type Product struct {
	ID           int             `json:"id"`
	SKU          string          `json:"sku"` // único, no vacío
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	UnitCost     decimal.Decimal `json:"unitCost"`
	ReorderPoint int             `json:"reorderPoint"`
}
