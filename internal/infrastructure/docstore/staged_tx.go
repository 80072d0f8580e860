package docstore

import (
	"context"
	"sort"

	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

// Document documento pendiente de escritura.
type Document struct {
	Name string
	Data []byte
}

// StagedTx acumula escrituras en memoria hasta que el backend confirma.
// Las lecturas ven primero lo escrito dentro de la misma transacción.
type StagedTx struct {
	read   func(ctx context.Context, name string) ([]byte, error)
	writes map[string][]byte
}

// NewStagedTx construye una transacción que lee del backend con read.
func NewStagedTx(read func(ctx context.Context, name string) ([]byte, error)) *StagedTx {
	return &StagedTx{read: read, writes: make(map[string][]byte)}
}

func (t *StagedTx) Get(ctx context.Context, name string) ([]byte, error) {
	if doc, ok := t.writes[name]; ok {
		return cloneBytes(doc), nil
	}
	return t.read(ctx, name)
}

func (t *StagedTx) Put(_ context.Context, name string, doc []byte) error {
	t.writes[name] = cloneBytes(doc)
	return nil
}

// Pending devuelve las escrituras en el orden de repository.AllCollections;
// nombres desconocidos van al final en orden alfabético.
func (t *StagedTx) Pending() []Document {
	out := make([]Document, 0, len(t.writes))
	seen := make(map[string]bool, len(t.writes))
	for _, name := range repository.AllCollections {
		if doc, ok := t.writes[name]; ok {
			out = append(out, Document{Name: name, Data: doc})
			seen[name] = true
		}
	}
	rest := make([]string, 0)
	for name := range t.writes {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		out = append(out, Document{Name: name, Data: t.writes[name]})
	}
	return out
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
