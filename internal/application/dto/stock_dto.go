package dto

// CreateStockLevelRequest entrada para registrar stock de un producto en una bodega.
type CreateStockLevelRequest struct {
	ProductID   int `json:"productId"`
	WarehouseID int `json:"warehouseId"`
	Quantity    int `json:"quantity"`
}

// UpdateStockLevelRequest entrada para ajustar un registro de stock.
type UpdateStockLevelRequest struct {
	ProductID   *int `json:"productId"`
	WarehouseID *int `json:"warehouseId"`
	Quantity    *int `json:"quantity"`
}

// StockLevelResponse registro de stock con nombres resueltos.
type StockLevelResponse struct {
	ID            int    `json:"id"`
	ProductID     int    `json:"productId"`
	WarehouseID   int    `json:"warehouseId"`
	Quantity      int    `json:"quantity"`
	ProductSKU    string `json:"productSku,omitempty"`
	ProductName   string `json:"productName,omitempty"`
	WarehouseName string `json:"warehouseName,omitempty"`
}
