package dto

import "github.com/shopspring/decimal"

// WarehouseStockResponse stock total de una bodega.
type WarehouseStockResponse struct {
	WarehouseID int    `json:"warehouseId"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	TotalStock  int    `json:"totalStock"`
}

// CategoryStockResponse unidades por categoría.
type CategoryStockResponse struct {
	Category string `json:"category"`
	Units    int    `json:"units"`
}

// DashboardResponse métricas agregadas del inventario.
type DashboardResponse struct {
	TotalProducts        int                      `json:"totalProducts"`
	TotalWarehouses      int                      `json:"totalWarehouses"`
	TotalStock           int                      `json:"totalStock"`
	TotalInventoryValue  decimal.Decimal          `json:"totalInventoryValue"`
	LowStockCount        int                      `json:"lowStockCount"`
	StockByWarehouse     []WarehouseStockResponse `json:"stockByWarehouse"`
	CategoryDistribution []CategoryStockResponse  `json:"categoryDistribution"`
}
