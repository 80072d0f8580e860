package entity

// StockLevel es la cantidad de un producto en una bodega.
// Se asume un único registro por par (ProductID, WarehouseID); Quantity nunca es negativa.
type StockLevel struct {
	ID          int `json:"id"`
	ProductID   int `json:"productId"`
	WarehouseID int `json:"warehouseId"`
	Quantity    int `json:"quantity"`
}
