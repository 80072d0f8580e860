package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// TransferRequest datos de un traslado entre bodegas.
type TransferRequest struct {
	ProductID       int
	FromWarehouseID int
	ToWarehouseID   int
	Quantity        int
	Notes           string
	CreatedBy       string
}

// NewTransferID genera el identificador de un traslado.
func NewTransferID() string {
	return "TRF-" + uuid.New().String()
}

// ValidateTransferRequest valida los campos del traslado sin consultar datos.
// El orden de las validaciones es parte del contrato: la primera que falla define el error.
func ValidateTransferRequest(req TransferRequest) error {
	if req.ProductID == 0 || req.FromWarehouseID == 0 || req.ToWarehouseID == 0 || req.Quantity == 0 {
		return fmt.Errorf("%w: faltan campos requeridos", domain.ErrInvalidInput)
	}
	if req.Quantity < 0 {
		return fmt.Errorf("%w: la cantidad debe ser mayor a 0", domain.ErrInvalidInput)
	}
	if req.FromWarehouseID == req.ToWarehouseID {
		return fmt.Errorf("%w: la bodega origen y destino deben ser distintas", domain.ErrInvalidInput)
	}
	return nil
}

// ApplyTransfer resta la cantidad del registro origen y la suma al destino, creando el
// registro destino (id = max + 1) si no existe. No modifica levels: devuelve una copia.
// Se asume que la solicitud ya pasó ValidateTransferRequest y que el producto existe.
func ApplyTransfer(levels []entity.StockLevel, req TransferRequest, now time.Time) ([]entity.StockLevel, entity.Transfer, error) {
	out := make([]entity.StockLevel, len(levels), len(levels)+1)
	copy(out, levels)

	src := FindStockLevel(out, req.ProductID, req.FromWarehouseID)
	if src < 0 {
		return nil, entity.Transfer{}, fmt.Errorf("%w: el producto no existe en la bodega origen", domain.ErrNotFound)
	}
	if out[src].Quantity < req.Quantity {
		return nil, entity.Transfer{}, fmt.Errorf("%w: disponible %d, solicitado %d",
			domain.ErrInsufficientStock, out[src].Quantity, req.Quantity)
	}
	out[src].Quantity -= req.Quantity

	if dst := FindStockLevel(out, req.ProductID, req.ToWarehouseID); dst >= 0 {
		out[dst].Quantity += req.Quantity
	} else {
		out = append(out, entity.StockLevel{
			ID:          NextStockLevelID(out),
			ProductID:   req.ProductID,
			WarehouseID: req.ToWarehouseID,
			Quantity:    req.Quantity,
		})
	}

	transfer := entity.Transfer{
		ID:              NewTransferID(),
		ProductID:       req.ProductID,
		FromWarehouseID: req.FromWarehouseID,
		ToWarehouseID:   req.ToWarehouseID,
		Quantity:        req.Quantity,
		Status:          entity.TransferStatusCompleted,
		Notes:           req.Notes,
		CreatedBy:       req.CreatedBy,
		CreatedAt:       now,
		CompletedAt:     now,
	}
	return out, transfer, nil
}

// NextStockLevelID devuelve max(id) + 1, o 1 si no hay registros.
func NextStockLevelID(levels []entity.StockLevel) int {
	maxID := 0
	for _, l := range levels {
		if l.ID > maxID {
			maxID = l.ID
		}
	}
	return maxID + 1
}

// FindStockLevel devuelve el índice del registro (productID, warehouseID) o -1.
func FindStockLevel(levels []entity.StockLevel, productID, warehouseID int) int {
	for i, l := range levels {
		if l.ProductID == productID && l.WarehouseID == warehouseID {
			return i
		}
	}
	return -1
}
