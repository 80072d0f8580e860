// Package docstore adapta backends de documentos JSON (archivo, memoria, PostgreSQL, Redis)
// a los puertos repository.Collection: cada colección es un único documento JSON con el
// arreglo completo de registros, leído y reemplazado entero.
package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

// Tx acceso a documentos dentro de una transacción del backend.
// Get devuelve (nil, nil) si el documento no existe.
type Tx interface {
	Get(ctx context.Context, name string) ([]byte, error)
	Put(ctx context.Context, name string, doc []byte) error
}

// Backend abre transacciones serializadas y atómicas sobre documentos.
type Backend interface {
	Run(ctx context.Context, fn func(tx Tx) error) error
}

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner implementa repository.TxRunner sobre cualquier Backend.
type TxRunner struct {
	backend Backend
}

// NewTxRunner construye el runner.
func NewTxRunner(backend Backend) *TxRunner {
	return &TxRunner{backend: backend}
}

// Run ejecuta fn con repositorios atados a la transacción del backend.
// Los errores de fn se devuelven tal cual; los del backend se envuelven en domain.ErrStorage.
func (r *TxRunner) Run(ctx context.Context, fn func(c repository.Collections) error) error {
	var fnErr error
	err := r.backend.Run(ctx, func(tx Tx) error {
		fnErr = fn(collectionsFor(tx))
		return fnErr
	})
	if err == nil {
		return nil
	}
	if fnErr != nil {
		return fnErr
	}
	if errors.Is(err, domain.ErrStorage) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrStorage, err)
}

func collectionsFor(tx Tx) repository.Collections {
	return repository.Collections{
		Products:    &collection[entity.Product]{tx: tx, name: repository.CollectionProducts},
		Warehouses:  &collection[entity.Warehouse]{tx: tx, name: repository.CollectionWarehouses},
		StockLevels: &collection[entity.StockLevel]{tx: tx, name: repository.CollectionStockLevels},
		Transfers:   &collection[entity.Transfer]{tx: tx, name: repository.CollectionTransfers},
		Alerts:      &collection[entity.Alert]{tx: tx, name: repository.CollectionAlerts},
	}
}
