package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/inventory"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
	"github.com/jhoicas/Inventario-stock/pkg/logger"
)

// TransferUseCase mueve stock entre bodegas. Stock y bitácora de traslados se confirman
// en la misma transacción del almacén.
type TransferUseCase struct {
	tx  repository.TxRunner
	log *logger.Logger
	now Clock
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(tx repository.TxRunner, log *logger.Logger, now Clock) *TransferUseCase {
	if now == nil {
		now = time.Now
	}
	return &TransferUseCase{tx: tx, log: log.Component("transfers"), now: now}
}

// CreateTransfer valida y ejecuta el traslado. El orden de validación define el error devuelto:
// campos, cantidad, bodegas distintas, producto, bodega destino, stock origen, suficiencia.
func (uc *TransferUseCase) CreateTransfer(ctx context.Context, userID string, in dto.CreateTransferRequest) (*dto.TransferResponse, error) {
	req := inventory.TransferRequest{
		ProductID:       in.ProductID,
		FromWarehouseID: in.FromWarehouseID,
		ToWarehouseID:   in.ToWarehouseID,
		Quantity:        in.Quantity,
		Notes:           in.Notes,
		CreatedBy:       userID,
	}
	if err := inventory.ValidateTransferRequest(req); err != nil {
		return nil, err
	}

	var created entity.Transfer
	err := uc.tx.Run(ctx, func(c repository.Collections) error {
		products, err := c.Products.LoadAll(ctx)
		if err != nil {
			return err
		}
		if !containsProduct(products, req.ProductID) {
			return fmt.Errorf("%w: producto %d", domain.ErrNotFound, req.ProductID)
		}
		warehouses, err := c.Warehouses.LoadAll(ctx)
		if err != nil {
			return err
		}
		if !containsWarehouse(warehouses, req.ToWarehouseID) {
			return fmt.Errorf("%w: bodega destino %d", domain.ErrNotFound, req.ToWarehouseID)
		}
		levels, err := c.StockLevels.LoadAll(ctx)
		if err != nil {
			return err
		}
		updated, transfer, err := inventory.ApplyTransfer(levels, req, uc.now().UTC())
		if err != nil {
			return err
		}
		transfers, err := c.Transfers.LoadAll(ctx)
		if err != nil {
			return err
		}
		if err := c.Transfers.SaveAll(ctx, append(transfers, transfer)); err != nil {
			return err
		}
		if err := c.StockLevels.SaveAll(ctx, updated); err != nil {
			return err
		}
		created = transfer
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("transfer_id", created.ID).
		Int("product_id", created.ProductID).
		Int("from_warehouse_id", created.FromWarehouseID).
		Int("to_warehouse_id", created.ToWarehouseID).
		Int("quantity", created.Quantity).
		Msg("traslado completado")

	resp := toTransferResponse(created)
	return &resp, nil
}

// ListTransfers historial de traslados en el orden almacenado.
func (uc *TransferUseCase) ListTransfers(ctx context.Context) ([]dto.TransferResponse, error) {
	var out []dto.TransferResponse
	err := uc.tx.Run(ctx, func(c repository.Collections) error {
		transfers, err := c.Transfers.LoadAll(ctx)
		if err != nil {
			return err
		}
		out = make([]dto.TransferResponse, 0, len(transfers))
		for _, t := range transfers {
			out = append(out, toTransferResponse(t))
		}
		return nil
	})
	return out, err
}

func containsProduct(products []entity.Product, id int) bool {
	for _, p := range products {
		if p.ID == id {
			return true
		}
	}
	return false
}

func containsWarehouse(warehouses []entity.Warehouse, id int) bool {
	for _, w := range warehouses {
		if w.ID == id {
			return true
		}
	}
	return false
}

func toTransferResponse(t entity.Transfer) dto.TransferResponse {
	return dto.TransferResponse{
		ID:              t.ID,
		ProductID:       t.ProductID,
		FromWarehouseID: t.FromWarehouseID,
		ToWarehouseID:   t.ToWarehouseID,
		Quantity:        t.Quantity,
		Notes:           t.Notes,
		Status:          t.Status,
		CreatedBy:       t.CreatedBy,
		CreatedAt:       t.CreatedAt,
		CompletedAt:     t.CompletedAt,
	}
}
