package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// WarehouseStock stock total de una bodega.
type WarehouseStock struct {
	WarehouseID int
	Code        string
	Name        string
	TotalStock  int
}

// CategoryStock unidades en stock por categoría de producto.
type CategoryStock struct {
	Category string
	Units    int
}

// TotalInventoryValue Σ unitCost·quantity. Los registros de productos inexistentes se ignoran.
func TotalInventoryValue(products []entity.Product, levels []entity.StockLevel) decimal.Decimal {
	cost := make(map[int]decimal.Decimal, len(products))
	for _, p := range products {
		cost[p.ID] = p.UnitCost
	}
	total := decimal.Zero
	for _, l := range levels {
		if c, ok := cost[l.ProductID]; ok {
			total = total.Add(c.Mul(decimal.NewFromInt(int64(l.Quantity))))
		}
	}
	return total
}

// TotalStock suma todas las cantidades.
func TotalStock(levels []entity.StockLevel) int {
	total := 0
	for _, l := range levels {
		total += l.Quantity
	}
	return total
}

// LowStockProducts productos cuyo stock total está bajo el punto de reorden.
func LowStockProducts(products []entity.Product, levels []entity.StockLevel) []entity.Product {
	totals := stockByProduct(levels)
	out := make([]entity.Product, 0)
	for _, p := range products {
		if totals[p.ID] < p.ReorderPoint {
			out = append(out, p)
		}
	}
	return out
}

// StockByWarehouse stock total por bodega; incluye bodegas vacías, en el orden recibido.
func StockByWarehouse(warehouses []entity.Warehouse, levels []entity.StockLevel) []WarehouseStock {
	out := make([]WarehouseStock, 0, len(warehouses))
	for _, w := range warehouses {
		out = append(out, WarehouseStock{
			WarehouseID: w.ID,
			Code:        w.Code,
			Name:        w.Name,
			TotalStock:  TotalStockByWarehouse(w.ID, levels),
		})
	}
	return out
}

// CategoryDistribution unidades por categoría, ordenadas por nombre.
func CategoryDistribution(products []entity.Product, levels []entity.StockLevel) []CategoryStock {
	category := make(map[int]string, len(products))
	for _, p := range products {
		category[p.ID] = p.Category
	}
	units := make(map[string]int)
	for _, l := range levels {
		if c, ok := category[l.ProductID]; ok {
			units[c] += l.Quantity
		}
	}
	out := make([]CategoryStock, 0, len(units))
	for c, u := range units {
		out = append(out, CategoryStock{Category: c, Units: u})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}
