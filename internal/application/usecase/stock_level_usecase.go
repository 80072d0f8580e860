package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/inventory"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

// StockLevelUseCase casos de uso CRUD para registros de stock (producto, bodega, cantidad).
type StockLevelUseCase struct {
	tx repository.TxRunner
}

// NewStockLevelUseCase construye el caso de uso.
func NewStockLevelUseCase(tx repository.TxRunner) *StockLevelUseCase {
	return &StockLevelUseCase{tx: tx}
}

// List lista todos los registros con nombres de producto y bodega.
func (uc *StockLevelUseCase) List(ctx context.Context) ([]dto.StockLevelResponse, error) {
	var out []dto.StockLevelResponse
	err := uc.tx.Run(ctx, func(c repository.Collections) error {
		s, err := loadStockSnapshot(ctx, c)
		if err != nil {
			return err
		}
		out = make([]dto.StockLevelResponse, 0, len(s.levels))
		for _, l := range s.levels {
			out = append(out, s.response(l))
		}
		return nil
	})
	return out, err
}

// GetByID obtiene un registro de stock.
func (uc *StockLevelUseCase) GetByID(ctx context.Context, id int) (*dto.StockLevelResponse, error) {
	var out *dto.StockLevelResponse
	err := uc.tx.Run(ctx, func(c repository.Collections) error {
		s, err := loadStockSnapshot(ctx, c)
		if err != nil {
			return err
		}
		i := indexOf(s.levels, func(l entity.StockLevel) bool { return l.ID == id })
		if i < 0 {
			return fmt.Errorf("%w: registro de stock %d", domain.ErrNotFound, id)
		}
		resp := s.response(s.levels[i])
		out = &resp
		return nil
	})
	return out, err
}

// Create registra stock para un par producto/bodega que aún no tiene registro.
func (uc *StockLevelUseCase) Create(ctx context.Context, in dto.CreateStockLevelRequest) (*dto.StockLevelResponse, error) {
	level := entity.StockLevel{ProductID: in.ProductID, WarehouseID: in.WarehouseID, Quantity: in.Quantity}
	var out *dto.StockLevelResponse
	err := uc.tx.Run(ctx, func(c repository.Collections) error {
		s, err := loadStockSnapshot(ctx, c)
		if err != nil {
			return err
		}
		if err := s.validate(level); err != nil {
			return err
		}
		if inventory.FindStockLevel(s.levels, level.ProductID, level.WarehouseID) >= 0 {
			return fmt.Errorf("%w: ya existe stock del producto %d en la bodega %d",
				domain.ErrDuplicate, level.ProductID, level.WarehouseID)
		}
		level.ID = inventory.NextStockLevelID(s.levels)
		if err := c.StockLevels.SaveAll(ctx, append(s.levels, level)); err != nil {
			return err
		}
		resp := s.response(level)
		out = &resp
		return nil
	})
	return out, err
}

// Update ajusta cantidad o reasigna el par producto/bodega.
func (uc *StockLevelUseCase) Update(ctx context.Context, id int, in dto.UpdateStockLevelRequest) (*dto.StockLevelResponse, error) {
	var out *dto.StockLevelResponse
	err := uc.tx.Run(ctx, func(c repository.Collections) error {
		s, err := loadStockSnapshot(ctx, c)
		if err != nil {
			return err
		}
		i := indexOf(s.levels, func(l entity.StockLevel) bool { return l.ID == id })
		if i < 0 {
			return fmt.Errorf("%w: registro de stock %d", domain.ErrNotFound, id)
		}
		l := s.levels[i]
		if in.ProductID != nil {
			l.ProductID = *in.ProductID
		}
		if in.WarehouseID != nil {
			l.WarehouseID = *in.WarehouseID
		}
		if in.Quantity != nil {
			l.Quantity = *in.Quantity
		}
		if err := s.validate(l); err != nil {
			return err
		}
		dup := indexOf(s.levels, func(o entity.StockLevel) bool {
			return o.ID != id && o.ProductID == l.ProductID && o.WarehouseID == l.WarehouseID
		})
		if dup >= 0 {
			return fmt.Errorf("%w: ya existe stock del producto %d en la bodega %d",
				domain.ErrDuplicate, l.ProductID, l.WarehouseID)
		}
		s.levels[i] = l
		if err := c.StockLevels.SaveAll(ctx, s.levels); err != nil {
			return err
		}
		resp := s.response(l)
		out = &resp
		return nil
	})
	return out, err
}

// Delete elimina un registro de stock.
func (uc *StockLevelUseCase) Delete(ctx context.Context, id int) error {
	return uc.tx.Run(ctx, func(c repository.Collections) error {
		levels, err := c.StockLevels.LoadAll(ctx)
		if err != nil {
			return err
		}
		i := indexOf(levels, func(l entity.StockLevel) bool { return l.ID == id })
		if i < 0 {
			return fmt.Errorf("%w: registro de stock %d", domain.ErrNotFound, id)
		}
		return c.StockLevels.SaveAll(ctx, append(levels[:i], levels[i+1:]...))
	})
}

// stockSnapshot colecciones necesarias para validar y presentar registros de stock.
type stockSnapshot struct {
	levels     []entity.StockLevel
	products   map[int]entity.Product
	warehouses map[int]entity.Warehouse
}

func loadStockSnapshot(ctx context.Context, c repository.Collections) (*stockSnapshot, error) {
	levels, err := c.StockLevels.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	products, err := c.Products.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	warehouses, err := c.Warehouses.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	s := &stockSnapshot{
		levels:     levels,
		products:   make(map[int]entity.Product, len(products)),
		warehouses: make(map[int]entity.Warehouse, len(warehouses)),
	}
	for _, p := range products {
		s.products[p.ID] = p
	}
	for _, w := range warehouses {
		s.warehouses[w.ID] = w
	}
	return s, nil
}

func (s *stockSnapshot) validate(l entity.StockLevel) error {
	if l.ProductID == 0 || l.WarehouseID == 0 {
		return fmt.Errorf("%w: producto y bodega son obligatorios", domain.ErrInvalidInput)
	}
	if l.Quantity < 0 {
		return fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrInvalidInput)
	}
	if _, ok := s.products[l.ProductID]; !ok {
		return fmt.Errorf("%w: producto %d", domain.ErrNotFound, l.ProductID)
	}
	if _, ok := s.warehouses[l.WarehouseID]; !ok {
		return fmt.Errorf("%w: bodega %d", domain.ErrNotFound, l.WarehouseID)
	}
	return nil
}

func (s *stockSnapshot) response(l entity.StockLevel) dto.StockLevelResponse {
	p := s.products[l.ProductID]
	return dto.StockLevelResponse{
		ID:            l.ID,
		ProductID:     l.ProductID,
		WarehouseID:   l.WarehouseID,
		Quantity:      l.Quantity,
		ProductSKU:    p.SKU,
		ProductName:   p.Name,
		WarehouseName: s.warehouses[l.WarehouseID].Name,
	}
}
