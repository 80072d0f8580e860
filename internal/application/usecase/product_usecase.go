package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/inventory"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	tx repository.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(tx repository.TxRunner) *ProductUseCase {
	return &ProductUseCase{tx: tx}
}

// List devuelve todos los productos con su stock total.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	var out []dto.ProductResponse
	err := uc.tx.Run(ctx, func(c repository.Collections) error {
		products, err := c.Products.LoadAll(ctx)
		if err != nil {
			return err
		}
		levels, err := c.StockLevels.LoadAll(ctx)
		if err != nil {
			return err
		}
		out = make([]dto.ProductResponse, 0, len(products))
		for _, p := range products {
			out = append(out, toProductResponse(p, levels))
		}
		return nil
	})
	return out, err
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	err := uc.tx.Run(ctx, func(c repository.Collections) error {
		products, err := c.Products.LoadAll(ctx)
		if err != nil {
			return err
		}
		i := indexOf(products, func(p entity.Product) bool { return p.ID == id })
		if i < 0 {
			return fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
		}
		levels, err := c.StockLevels.LoadAll(ctx)
		if err != nil {
			return err
		}
		resp := toProductResponse(products[i], levels)
		out = &resp
		return nil
	})
	return out, err
}

// Create crea un producto nuevo con id = max + 1.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := entity.Product{
		SKU:          strings.TrimSpace(in.SKU),
		Name:         strings.TrimSpace(in.Name),
		Category:     strings.TrimSpace(in.Category),
		UnitCost:     in.UnitCost,
		ReorderPoint: in.ReorderPoint,
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	var out *dto.ProductResponse
	err := uc.tx.Run(ctx, func(c repository.Collections) error {
		products, err := c.Products.LoadAll(ctx)
		if err != nil {
			return err
		}
		if indexOf(products, func(p entity.Product) bool { return sameKey(p.SKU, product.SKU) }) >= 0 {
			return fmt.Errorf("%w: el SKU %s ya existe", domain.ErrDuplicate, product.SKU)
		}
		product.ID = nextID(products, func(p entity.Product) int { return p.ID })
		if err := c.Products.SaveAll(ctx, append(products, product)); err != nil {
			return err
		}
		resp := toProductResponse(product, nil)
		out = &resp
		return nil
	})
	return out, err
}

// Update actualiza los campos enviados de un producto.
func (uc *ProductUseCase) Update(ctx context.Context, id int, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	err := uc.tx.Run(ctx, func(c repository.Collections) error {
		products, err := c.Products.LoadAll(ctx)
		if err != nil {
			return err
		}
		i := indexOf(products, func(p entity.Product) bool { return p.ID == id })
		if i < 0 {
			return fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
		}
		p := products[i]
		if in.SKU != nil {
			p.SKU = strings.TrimSpace(*in.SKU)
		}
		if in.Name != nil {
			p.Name = strings.TrimSpace(*in.Name)
		}
		if in.Category != nil {
			p.Category = strings.TrimSpace(*in.Category)
		}
		if in.UnitCost != nil {
			p.UnitCost = *in.UnitCost
		}
		if in.ReorderPoint != nil {
			p.ReorderPoint = *in.ReorderPoint
		}
		if err := validateProduct(p); err != nil {
			return err
		}
		dup := indexOf(products, func(o entity.Product) bool { return o.ID != id && sameKey(o.SKU, p.SKU) })
		if dup >= 0 {
			return fmt.Errorf("%w: el SKU %s ya existe", domain.ErrDuplicate, p.SKU)
		}
		products[i] = p
		if err := c.Products.SaveAll(ctx, products); err != nil {
			return err
		}
		levels, err := c.StockLevels.LoadAll(ctx)
		if err != nil {
			return err
		}
		resp := toProductResponse(p, levels)
		out = &resp
		return nil
	})
	return out, err
}

// Delete elimina el producto y sus registros de stock en la misma transacción.
func (uc *ProductUseCase) Delete(ctx context.Context, id int) error {
	return uc.tx.Run(ctx, func(c repository.Collections) error {
		products, err := c.Products.LoadAll(ctx)
		if err != nil {
			return err
		}
		i := indexOf(products, func(p entity.Product) bool { return p.ID == id })
		if i < 0 {
			return fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
		}
		levels, err := c.StockLevels.LoadAll(ctx)
		if err != nil {
			return err
		}
		kept := make([]entity.StockLevel, 0, len(levels))
		for _, l := range levels {
			if l.ProductID != id {
				kept = append(kept, l)
			}
		}
		if err := c.Products.SaveAll(ctx, append(products[:i], products[i+1:]...)); err != nil {
			return err
		}
		if len(kept) != len(levels) {
			return c.StockLevels.SaveAll(ctx, kept)
		}
		return nil
	})
}

func validateProduct(p entity.Product) error {
	if p.SKU == "" || p.Name == "" {
		return fmt.Errorf("%w: sku y nombre son obligatorios", domain.ErrInvalidInput)
	}
	if p.UnitCost.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: el costo unitario no puede ser negativo", domain.ErrInvalidInput)
	}
	if p.ReorderPoint < 0 {
		return fmt.Errorf("%w: el punto de reorden no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

func toProductResponse(p entity.Product, levels []entity.StockLevel) dto.ProductResponse {
	total := inventory.TotalStockByProduct(p.ID, levels)
	return dto.ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Category:     p.Category,
		UnitCost:     p.UnitCost,
		ReorderPoint: p.ReorderPoint,
		TotalStock:   total,
		StockStatus:  inventory.ClassifyStock(total, p.ReorderPoint).Status,
	}
}
