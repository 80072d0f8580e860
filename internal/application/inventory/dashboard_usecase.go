package inventory

import (
	"context"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain/inventory"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

// DashboardUseCase arma las métricas del tablero en una sola lectura consistente.
type DashboardUseCase struct {
	tx repository.TxRunner
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(tx repository.TxRunner) *DashboardUseCase {
	return &DashboardUseCase{tx: tx}
}

// GetSummary totales, valor del inventario, productos bajo reorden, stock por bodega y por categoría.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	var out *dto.DashboardResponse
	err := uc.tx.Run(ctx, func(c repository.Collections) error {
		products, err := c.Products.LoadAll(ctx)
		if err != nil {
			return err
		}
		warehouses, err := c.Warehouses.LoadAll(ctx)
		if err != nil {
			return err
		}
		levels, err := c.StockLevels.LoadAll(ctx)
		if err != nil {
			return err
		}

		byWarehouse := inventory.StockByWarehouse(warehouses, levels)
		whResp := make([]dto.WarehouseStockResponse, 0, len(byWarehouse))
		for _, w := range byWarehouse {
			whResp = append(whResp, dto.WarehouseStockResponse{
				WarehouseID: w.WarehouseID,
				Code:        w.Code,
				Name:        w.Name,
				TotalStock:  w.TotalStock,
			})
		}
		byCategory := inventory.CategoryDistribution(products, levels)
		catResp := make([]dto.CategoryStockResponse, 0, len(byCategory))
		for _, cs := range byCategory {
			catResp = append(catResp, dto.CategoryStockResponse{Category: cs.Category, Units: cs.Units})
		}

		out = &dto.DashboardResponse{
			TotalProducts:        len(products),
			TotalWarehouses:      len(warehouses),
			TotalStock:           inventory.TotalStock(levels),
			TotalInventoryValue:  inventory.TotalInventoryValue(products, levels),
			LowStockCount:        len(inventory.LowStockProducts(products, levels)),
			StockByWarehouse:     whResp,
			CategoryDistribution: catResp,
		}
		return nil
	})
	return out, err
}
