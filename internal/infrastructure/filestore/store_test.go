package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/docstore"
)

func TestStore_WritesOriginalFileLayout(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := Open(dir)
	require.NoError(t, err)
	runner := docstore.NewTxRunner(store)

	err = runner.Run(ctx, func(c repository.Collections) error {
		return c.StockLevels.SaveAll(ctx, []entity.StockLevel{{ID: 1, ProductID: 2, WarehouseID: 3, Quantity: 4}})
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, "stock.json"))
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"id\": 1,\n    \"productId\": 2,\n    \"warehouseId\": 3,\n    \"quantity\": 4\n  }\n]", string(raw))

	_, err = os.Stat(filepath.Join(dir, journalFile))
	assert.True(t, os.IsNotExist(err), "la bitácora se borra tras confirmar")
}

func TestStore_MissingFilesLoadEmpty(t *testing.T) {
	ctx := context.Background()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "data"))
	require.NoError(t, err)

	err = docstore.NewTxRunner(store).Run(ctx, func(c repository.Collections) error {
		products, err := c.Products.LoadAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, products)
		return nil
	})
	require.NoError(t, err)
}

func TestStore_FailedRunLeavesFilesUntouched(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := Open(dir)
	require.NoError(t, err)
	runner := docstore.NewTxRunner(store)

	err = runner.Run(ctx, func(c repository.Collections) error {
		require.NoError(t, c.Transfers.SaveAll(ctx, []entity.Transfer{{ID: "TRF-1"}}))
		return errors.New("abort")
	})
	require.Error(t, err)

	_, err = os.Stat(filepath.Join(dir, "transfers.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestOpen_ReplaysInterruptedCommit(t *testing.T) {
	dir := t.TempDir()
	entries := []journalEntry{
		{Name: repository.CollectionTransfers, Data: `[{"id":"TRF-9"}]`},
		{Name: repository.CollectionStockLevels, Data: `[{"id":1,"productId":1,"warehouseId":1,"quantity":7}]`},
	}
	journal, err := json.Marshal(entries)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, journalFile), journal, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stock.json"), []byte(`[{"id":1,"productId":1,"warehouseId":1,"quantity":50}]`), 0o644))

	store, err := Open(dir)
	require.NoError(t, err)

	ctx := context.Background()
	err = docstore.NewTxRunner(store).Run(ctx, func(c repository.Collections) error {
		levels, err := c.StockLevels.LoadAll(ctx)
		require.NoError(t, err)
		require.Len(t, levels, 1)
		assert.Equal(t, 7, levels[0].Quantity)

		transfers, err := c.Transfers.LoadAll(ctx)
		require.NoError(t, err)
		require.Len(t, transfers, 1)
		assert.Equal(t, "TRF-9", transfers[0].ID)
		return nil
	})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, journalFile))
	assert.True(t, os.IsNotExist(err))
}

func TestOpen_DiscardsTruncatedJournal(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, journalFile), []byte(`[{"name":"stockLev`), 0o644))

	_, err := Open(dir)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, journalFile))
	assert.True(t, os.IsNotExist(err))
}

// failRenames hace fallar los renombrados cuyo destino cumple fail hasta que termine el test.
func failRenames(t *testing.T, fail func(base string, attempt int) bool) {
	t.Helper()
	var mu sync.Mutex
	attempts := make(map[string]int)
	rename = func(oldpath, newpath string) error {
		mu.Lock()
		base := filepath.Base(newpath)
		attempts[base]++
		n := attempts[base]
		mu.Unlock()
		if fail(base, n) {
			return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: os.ErrPermission}
		}
		return os.Rename(oldpath, newpath)
	}
	t.Cleanup(func() { rename = os.Rename })
}

func seedStock(t *testing.T, runner *docstore.TxRunner, transfers []entity.Transfer, qty int) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, runner.Run(ctx, func(c repository.Collections) error {
		if transfers != nil {
			if err := c.Transfers.SaveAll(ctx, transfers); err != nil {
				return err
			}
		}
		return c.StockLevels.SaveAll(ctx, []entity.StockLevel{{ID: 1, ProductID: 1, WarehouseID: 1, Quantity: qty}})
	}))
}

func transferAndDeduct(ctx context.Context, c repository.Collections) error {
	if err := c.Transfers.SaveAll(ctx, []entity.Transfer{{ID: "TRF-1", ProductID: 1, Quantity: 30}}); err != nil {
		return err
	}
	return c.StockLevels.SaveAll(ctx, []entity.StockLevel{{ID: 1, ProductID: 1, WarehouseID: 1, Quantity: 20}})
}

func readState(t *testing.T, runner *docstore.TxRunner) (transfers []entity.Transfer, qty int) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, runner.Run(ctx, func(c repository.Collections) error {
		var err error
		transfers, err = c.Transfers.LoadAll(ctx)
		require.NoError(t, err)
		levels, err := c.StockLevels.LoadAll(ctx)
		require.NoError(t, err)
		require.Len(t, levels, 1)
		qty = levels[0].Quantity
		return nil
	}))
	return transfers, qty
}

func assertNoJournals(t *testing.T, dir string) {
	t.Helper()
	for _, f := range []string{journalFile, rollbackFile} {
		_, err := os.Stat(filepath.Join(dir, f))
		assert.True(t, os.IsNotExist(err), "%s debe haberse borrado", f)
	}
}

func TestStore_FailedReplaceRollsBackEarlierFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := Open(dir)
	require.NoError(t, err)
	runner := docstore.NewTxRunner(store)
	seedStock(t, runner, nil, 50)

	// solo falla el primer reemplazo de stock.json; la restauración posterior funciona
	failRenames(t, func(base string, attempt int) bool { return base == "stock.json" && attempt == 1 })
	err = runner.Run(ctx, func(c repository.Collections) error { return transferAndDeduct(ctx, c) })
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.Contains(t, err.Error(), "stock.json")

	transfers, qty := readState(t, runner)
	assert.Empty(t, transfers, "el traslado no debe quedar registrado sin mover stock")
	assert.Equal(t, 50, qty)
	assertNoJournals(t, dir)
	_, err = os.Stat(filepath.Join(dir, "transfers.json"))
	assert.True(t, os.IsNotExist(err), "transfers.json no existía antes y se elimina al revertir")

	rename = os.Rename
	require.NoError(t, runner.Run(ctx, func(c repository.Collections) error { return transferAndDeduct(ctx, c) }))

	reopened, err := Open(dir)
	require.NoError(t, err)
	transfers, qty = readState(t, docstore.NewTxRunner(reopened))
	assert.Len(t, transfers, 1)
	assert.Equal(t, 20, qty)
}

func TestStore_PendingRollbackBlocksUntilResolved(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := Open(dir)
	require.NoError(t, err)
	runner := docstore.NewTxRunner(store)
	seedStock(t, runner, []entity.Transfer{{ID: "TRF-0"}}, 50)

	// transfers.json se reemplaza bien la primera vez pero no puede restaurarse
	failRenames(t, func(base string, attempt int) bool {
		return base == "stock.json" || (base == "transfers.json" && attempt > 1)
	})
	err = runner.Run(ctx, func(c repository.Collections) error { return transferAndDeduct(ctx, c) })
	require.Error(t, err)
	_, err = os.Stat(filepath.Join(dir, rollbackFile))
	require.NoError(t, err, "la reversión pendiente queda registrada")

	called := false
	err = runner.Run(ctx, func(c repository.Collections) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.False(t, called, "no se atienden transacciones con una reversión pendiente")

	rename = os.Rename
	transfers, qty := readState(t, runner)
	require.Len(t, transfers, 1)
	assert.Equal(t, "TRF-0", transfers[0].ID)
	assert.Equal(t, 50, qty)
	assertNoJournals(t, dir)
}

func TestOpen_FinishesPendingRollback(t *testing.T) {
	dir := t.TempDir()
	entries := []journalEntry{
		{Name: repository.CollectionTransfers, Data: `[{"id":"TRF-9"}]`},
		{Name: repository.CollectionStockLevels, Data: `[{"id":1,"productId":1,"warehouseId":1,"quantity":7}]`,
			Prev: `[{"id":1,"productId":1,"warehouseId":1,"quantity":50}]`, Existed: true},
	}
	journal, err := json.Marshal(entries)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, rollbackFile), journal, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "transfers.json"), []byte(`[{"id":"TRF-9"}]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stock.json"), []byte(`[{"id":1,"productId":1,"warehouseId":1,"quantity":50}]`), 0o644))

	store, err := Open(dir)
	require.NoError(t, err)

	transfers, qty := readState(t, docstore.NewTxRunner(store))
	assert.Empty(t, transfers)
	assert.Equal(t, 50, qty)
	assertNoJournals(t, dir)
}
