package crud

import (
	"context"
	"fmt"
	"sync"
)

// Catalog colección completa de una entidad referenciada por llave foránea
// (roles, puestos, bancos...), usada para listas de selección y para resolver nombres.
type Catalog[T any] struct {
	client DataAccess[T]
	id     func(T) string
	label  func(T) string

	mu    sync.RWMutex
	items []T
}

func NewCatalog[T any](client DataAccess[T], id, label func(T) string) *Catalog[T] {
	return &Catalog[T]{client: client, id: id, label: label, items: []T{}}
}

// Load pide la colección completa (todos=true). Si falla, conserva la anterior.
func (c *Catalog[T]) Load(ctx context.Context) error {
	env, err := c.client.List(ctx, ListQuery{Page: 1, Limit: DefaultPageSize, Todos: true})
	if err != nil {
		return fmt.Errorf("cargar catálogo: %w", err)
	}
	items := env.Data
	if items == nil {
		items = []T{}
	}
	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
	return nil
}

func (c *Catalog[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Name etiqueta del elemento con ese id, o "-" si id está vacío o no existe.
func (c *Catalog[T]) Name(id string) string {
	if id == "" {
		return "-"
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if c.id(it) == id {
			return c.label(it)
		}
	}
	return "-"
}
