package repository

import (
	"context"

	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// Nombres de las colecciones persistidas.
const (
	CollectionProducts    = "products"
	CollectionWarehouses  = "warehouses"
	CollectionStockLevels = "stockLevels"
	CollectionTransfers   = "transfers"
	CollectionAlerts      = "alerts"
)

// AllCollections lista las colecciones en el orden en que se escriben al confirmar.
// La bitácora de traslados va antes que el stock.
var AllCollections = []string{
	CollectionProducts,
	CollectionWarehouses,
	CollectionTransfers,
	CollectionStockLevels,
	CollectionAlerts,
}

// Collection define el puerto de persistencia de una colección completa (DIP):
// lectura total ordenada y reemplazo total.
type Collection[T any] interface {
	LoadAll(ctx context.Context) ([]T, error)
	SaveAll(ctx context.Context, items []T) error
}

type (
	ProductRepository    = Collection[entity.Product]
	WarehouseRepository  = Collection[entity.Warehouse]
	StockLevelRepository = Collection[entity.StockLevel]
	TransferRepository   = Collection[entity.Transfer]
	AlertRepository      = Collection[entity.Alert]
)

// Collections agrupa los repositorios atados a una misma transacción.
type Collections struct {
	Products    ProductRepository
	Warehouses  WarehouseRepository
	StockLevels StockLevelRepository
	Transfers   TransferRepository
	Alerts      AlertRepository
}
