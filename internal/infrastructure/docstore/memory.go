package docstore

import (
	"context"
	"sync"
)

var _ Backend = (*MemoryBackend)(nil)

// MemoryBackend guarda los documentos en memoria del proceso. Útil para tests y demos.
type MemoryBackend struct {
	mu   sync.Mutex
	docs map[string][]byte
}

// NewMemoryBackend construye un backend vacío.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{docs: make(map[string][]byte)}
}

// Run serializa con un mutex y aplica las escrituras solo si fn termina sin error.
func (m *MemoryBackend) Run(ctx context.Context, fn func(tx Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	tx := NewStagedTx(func(_ context.Context, name string) ([]byte, error) {
		return cloneBytes(m.docs[name]), nil
	})
	if err := fn(tx); err != nil {
		return err
	}
	for _, d := range tx.Pending() {
		m.docs[d.Name] = d.Data
	}
	return nil
}
