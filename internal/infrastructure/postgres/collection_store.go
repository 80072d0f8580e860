package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Inventario-stock/internal/infrastructure/docstore"
)

// advisoryLockKey clave de pg_advisory_xact_lock compartida por todas las instancias de la API.
const advisoryLockKey int64 = 0x494e56 // "INV"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS inventory_collections (
	name       TEXT PRIMARY KEY,
	payload    JSONB NOT NULL DEFAULT '[]'::jsonb,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

var _ docstore.Backend = (*CollectionStore)(nil)

// CollectionStore guarda cada colección como una fila JSONB. Las transacciones se serializan
// con un advisory lock para que el read-modify-write de colecciones completas sea seguro
// entre varias réplicas.
type CollectionStore struct {
	pool *pgxpool.Pool
}

// NewCollectionStore construye el backend con el pool.
func NewCollectionStore(pool *pgxpool.Pool) *CollectionStore {
	return &CollectionStore{pool: pool}
}

// EnsureSchema crea la tabla si no existe.
func (s *CollectionStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}

// Run inicia una transacción, toma el lock, ejecuta fn y hace Commit o Rollback.
func (s *CollectionStore) Run(ctx context.Context, fn func(tx docstore.Tx) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", advisoryLockKey); err != nil {
		return fmt.Errorf("advisory lock: %w", err)
	}
	if err := fn(newDocumentTx(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// documentTx implementa docstore.Tx sobre un Querier.
type documentTx struct {
	q Querier
}

func newDocumentTx(q Querier) *documentTx {
	return &documentTx{q: q}
}

func (t *documentTx) Get(ctx context.Context, name string) ([]byte, error) {
	var payload []byte
	err := t.q.QueryRow(ctx, `SELECT payload FROM inventory_collections WHERE name = $1`, name).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer colección %s: %w", name, err)
	}
	return payload, nil
}

func (t *documentTx) Put(ctx context.Context, name string, doc []byte) error {
	const q = `
		INSERT INTO inventory_collections (name, payload, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`
	if _, err := t.q.Exec(ctx, q, name, string(doc)); err != nil {
		return fmt.Errorf("guardar colección %s: %w", name, err)
	}
	return nil
}
