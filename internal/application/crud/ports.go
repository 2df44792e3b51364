// Package crud implementa el ciclo de vida genérico de las páginas de administración:
// listado paginado con búsqueda (ListController) y formulario de alta/edición
// (FormController), configurados por entidad mediante un Binding.
package crud

import (
	"context"

	"github.com/jhoicas/tesoreria-console/internal/application/dto"
)

// ListQuery parámetros de un listado. Todos pide la colección completa (la API ignora Page/Limit).
type ListQuery struct {
	Page     int
	Limit    int
	Busqueda string
	Todos    bool
}

// DataAccess puerto de acceso a datos de una entidad (uno por tipo de entidad).
// Create y Update reciben el payload ya filtrado por la lista blanca de campos.
type DataAccess[T any] interface {
	List(ctx context.Context, q ListQuery) (*dto.Envelope[[]T], error)
	Get(ctx context.Context, id string) (*dto.Envelope[T], error)
	Create(ctx context.Context, payload any) (*dto.Envelope[T], error)
	Update(ctx context.Context, id string, payload any) (*dto.Envelope[T], error)
	Delete(ctx context.Context, id string) (*dto.Envelope[T], error)
}

// ModalHost superficie modal controlada por la capa de UI.
type ModalHost interface {
	Open(titulo string)
	Close()
}

// ModalSurface ModalHost cuyo estado puede pintarse en el view-model.
type ModalSurface interface {
	ModalHost
	Visible() bool
	Titulo() string
}

// Notifier colaborador de notificaciones (toasts).
type Notifier interface {
	Success(titulo, mensaje string)
	Error(titulo, mensaje string)
}
