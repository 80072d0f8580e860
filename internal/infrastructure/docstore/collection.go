package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Inventario-stock/internal/domain"
)

// collection implementa repository.Collection[T] serializando el arreglo completo como JSON
// indentado con dos espacios (formato de los archivos de datos).
type collection[T any] struct {
	tx   Tx
	name string
}

func (c *collection[T]) LoadAll(ctx context.Context) ([]T, error) {
	doc, err := c.tx.Get(ctx, c.name)
	if err != nil {
		return nil, fmt.Errorf("%w: leer %s: %v", domain.ErrStorage, c.name, err)
	}
	items := make([]T, 0)
	if len(bytes.TrimSpace(doc)) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(doc, &items); err != nil {
		return nil, fmt.Errorf("%w: decodificar %s: %v", domain.ErrStorage, c.name, err)
	}
	if items == nil {
		items = make([]T, 0)
	}
	return items, nil
}

func (c *collection[T]) SaveAll(ctx context.Context, items []T) error {
	if items == nil {
		items = make([]T, 0)
	}
	doc, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: codificar %s: %v", domain.ErrStorage, c.name, err)
	}
	if err := c.tx.Put(ctx, c.name, doc); err != nil {
		return fmt.Errorf("%w: escribir %s: %v", domain.ErrStorage, c.name, err)
	}
	return nil
}
