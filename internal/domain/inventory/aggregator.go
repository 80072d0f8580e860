package inventory

import "github.com/jhoicas/Inventario-stock/internal/domain/entity"

// TotalStockByProduct suma las cantidades de todas las bodegas para productID.
// Un id sin registros devuelve 0.
func TotalStockByProduct(productID int, levels []entity.StockLevel) int {
	total := 0
	for _, l := range levels {
		if l.ProductID == productID {
			total += l.Quantity
		}
	}
	return total
}

// TotalStockByWarehouse suma las cantidades de todos los productos en warehouseID.
func TotalStockByWarehouse(warehouseID int, levels []entity.StockLevel) int {
	total := 0
	for _, l := range levels {
		if l.WarehouseID == warehouseID {
			total += l.Quantity
		}
	}
	return total
}

// stockByProduct agrupa cantidades por producto en un solo recorrido.
func stockByProduct(levels []entity.StockLevel) map[int]int {
	m := make(map[int]int, len(levels))
	for _, l := range levels {
		m[l.ProductID] += l.Quantity
	}
	return m
}
