package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/inventory"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD para bodegas.
type WarehouseUseCase struct {
	tx repository.TxRunner
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(tx repository.TxRunner) *WarehouseUseCase {
	return &WarehouseUseCase{tx: tx}
}

// List lista todas las bodegas con su stock total.
func (uc *WarehouseUseCase) List(ctx context.Context) ([]dto.WarehouseResponse, error) {
	var out []dto.WarehouseResponse
	err := uc.tx.Run(ctx, func(c repository.Collections) error {
		warehouses, err := c.Warehouses.LoadAll(ctx)
		if err != nil {
			return err
		}
		levels, err := c.StockLevels.LoadAll(ctx)
		if err != nil {
			return err
		}
		out = make([]dto.WarehouseResponse, 0, len(warehouses))
		for _, w := range warehouses {
			out = append(out, toWarehouseResponse(w, levels))
		}
		return nil
	})
	return out, err
}

// GetByID obtiene una bodega por ID.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, id int) (*dto.WarehouseResponse, error) {
	var out *dto.WarehouseResponse
	err := uc.tx.Run(ctx, func(c repository.Collections) error {
		warehouses, err := c.Warehouses.LoadAll(ctx)
		if err != nil {
			return err
		}
		i := indexOf(warehouses, func(w entity.Warehouse) bool { return w.ID == id })
		if i < 0 {
			return fmt.Errorf("%w: bodega %d", domain.ErrNotFound, id)
		}
		levels, err := c.StockLevels.LoadAll(ctx)
		if err != nil {
			return err
		}
		resp := toWarehouseResponse(warehouses[i], levels)
		out = &resp
		return nil
	})
	return out, err
}

// Create crea una nueva bodega.
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse := entity.Warehouse{
		Code:     strings.TrimSpace(in.Code),
		Name:     strings.TrimSpace(in.Name),
		Location: strings.TrimSpace(in.Location),
	}
	if err := validateWarehouse(warehouse); err != nil {
		return nil, err
	}
	var out *dto.WarehouseResponse
	err := uc.tx.Run(ctx, func(c repository.Collections) error {
		warehouses, err := c.Warehouses.LoadAll(ctx)
		if err != nil {
			return err
		}
		if indexOf(warehouses, func(w entity.Warehouse) bool { return sameKey(w.Code, warehouse.Code) }) >= 0 {
			return fmt.Errorf("%w: el código %s ya existe", domain.ErrDuplicate, warehouse.Code)
		}
		warehouse.ID = nextID(warehouses, func(w entity.Warehouse) int { return w.ID })
		if err := c.Warehouses.SaveAll(ctx, append(warehouses, warehouse)); err != nil {
			return err
		}
		resp := toWarehouseResponse(warehouse, nil)
		out = &resp
		return nil
	})
	return out, err
}

// Update actualiza una bodega.
func (uc *WarehouseUseCase) Update(ctx context.Context, id int, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	var out *dto.WarehouseResponse
	err := uc.tx.Run(ctx, func(c repository.Collections) error {
		warehouses, err := c.Warehouses.LoadAll(ctx)
		if err != nil {
			return err
		}
		i := indexOf(warehouses, func(w entity.Warehouse) bool { return w.ID == id })
		if i < 0 {
			return fmt.Errorf("%w: bodega %d", domain.ErrNotFound, id)
		}
		w := warehouses[i]
		if in.Code != nil {
			w.Code = strings.TrimSpace(*in.Code)
		}
		if in.Name != nil {
			w.Name = strings.TrimSpace(*in.Name)
		}
		if in.Location != nil {
			w.Location = strings.TrimSpace(*in.Location)
		}
		if err := validateWarehouse(w); err != nil {
			return err
		}
		if indexOf(warehouses, func(o entity.Warehouse) bool { return o.ID != id && sameKey(o.Code, w.Code) }) >= 0 {
			return fmt.Errorf("%w: el código %s ya existe", domain.ErrDuplicate, w.Code)
		}
		warehouses[i] = w
		if err := c.Warehouses.SaveAll(ctx, warehouses); err != nil {
			return err
		}
		levels, err := c.StockLevels.LoadAll(ctx)
		if err != nil {
			return err
		}
		resp := toWarehouseResponse(w, levels)
		out = &resp
		return nil
	})
	return out, err
}

// Delete elimina la bodega y sus registros de stock.
func (uc *WarehouseUseCase) Delete(ctx context.Context, id int) error {
	return uc.tx.Run(ctx, func(c repository.Collections) error {
		warehouses, err := c.Warehouses.LoadAll(ctx)
		if err != nil {
			return err
		}
		i := indexOf(warehouses, func(w entity.Warehouse) bool { return w.ID == id })
		if i < 0 {
			return fmt.Errorf("%w: bodega %d", domain.ErrNotFound, id)
		}
		levels, err := c.StockLevels.LoadAll(ctx)
		if err != nil {
			return err
		}
		kept := make([]entity.StockLevel, 0, len(levels))
		for _, l := range levels {
			if l.WarehouseID != id {
				kept = append(kept, l)
			}
		}
		if err := c.Warehouses.SaveAll(ctx, append(warehouses[:i], warehouses[i+1:]...)); err != nil {
			return err
		}
		if len(kept) != len(levels) {
			return c.StockLevels.SaveAll(ctx, kept)
		}
		return nil
	})
}

func validateWarehouse(w entity.Warehouse) error {
	if w.Code == "" || w.Name == "" {
		return fmt.Errorf("%w: código y nombre son obligatorios", domain.ErrInvalidInput)
	}
	return nil
}

func toWarehouseResponse(w entity.Warehouse, levels []entity.StockLevel) dto.WarehouseResponse {
	return dto.WarehouseResponse{
		ID:         w.ID,
		Code:       w.Code,
		Name:       w.Name,
		Location:   w.Location,
		TotalStock: inventory.TotalStockByWarehouse(w.ID, levels),
	}
}
