package crud

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/jhoicas/tesoreria-console/internal/domain"
)

// ListDeps colaboradores de un ListController.
type ListDeps[T any] struct {
	Client   DataAccess[T]
	Binding  Binding[T]
	Form     *FormController[T]
	Upsert   ModalHost // modal de alta/edición
	Confirm  ModalHost // confirmación de borrado
	Notifier Notifier
	Logger   zerolog.Logger
	PageSize int
}

// ListController estado de listado paginado de una colección y orquestación de
// alta, edición y borrado contra su DataAccess.
//
// Un Fetch mientras otro está en curso no hace nada. Search y ChangePage avanzan la
// generación de la consulta: una respuesta que llega para una generación anterior se
// descarta y la consulta vigente se vuelve a pedir.
type ListController[T any] struct {
	client   DataAccess[T]
	binding  Binding[T]
	form     *FormController[T]
	upsert   ModalHost
	confirm  ModalHost
	notifier Notifier
	log      zerolog.Logger

	loading atomic.Bool

	mu         sync.Mutex
	pagination Pagination
	busqueda   string
	items      []T
	gen        uint64
	draft      T
	isCreate   bool
	formToken  uint64
}

// NewListController construye el controlador con paginación inicial {1, PageSize, 0}.
func NewListController[T any](deps ListDeps[T]) *ListController[T] {
	size := deps.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	form := deps.Form
	if form == nil {
		form = NewFormController(deps.Binding, nil)
	}
	c := &ListController[T]{
		client:     deps.Client,
		binding:    deps.Binding,
		form:       form,
		upsert:     deps.Upsert,
		confirm:    deps.Confirm,
		notifier:   deps.Notifier,
		log:        deps.Logger.With().Str("entidad", deps.Binding.Nombre).Logger(),
		pagination: Pagination{Page: 1, PageSize: size},
		items:      []T{},
		draft:      deps.Binding.Empty(),
		isCreate:   true,
	}
	form.OnCancel(func() { c.upsert.Close() })
	return c
}

// Form formulario emparejado con este listado.
func (c *ListController[T]) Form() *FormController[T] { return c.form }

// Binding configuración de la entidad.
func (c *ListController[T]) Binding() Binding[T] { return c.binding }

// Fetch pide la página vigente. Si falla, el estado anterior se conserva.
func (c *ListController[T]) Fetch(ctx context.Context) error {
	if !c.loading.CompareAndSwap(false, true) {
		c.log.Debug().Msg("fetch ignorado: ya hay uno en curso")
		return nil
	}
	defer c.loading.Store(false)

	for {
		c.mu.Lock()
		q := ListQuery{Page: c.pagination.Page, Limit: c.pagination.PageSize, Busqueda: c.busqueda}
		gen := c.gen
		c.mu.Unlock()

		env, err := c.client.List(ctx, q)

		c.mu.Lock()
		stale := gen != c.gen
		if err == nil && !stale {
			c.items = env.Data
			if c.items == nil {
				c.items = []T{}
			}
			if env.Metadata != nil {
				c.pagination.TotalItems = env.Metadata.Total
			}
		}
		c.mu.Unlock()

		if stale {
			c.log.Debug().Uint64("generacion", gen).Msg("respuesta obsoleta descartada")
			continue
		}
		if err != nil {
			c.log.Warn().Err(err).Int("page", q.Page).Msg("listado fallido")
			c.notifier.Error("Error", domain.MessageOf(err, "Error al obtener "+c.binding.nombreMinusculas()))
			return fmt.Errorf("listar %s: %w", c.binding.nombreMinusculas(), err)
		}
		return nil
	}
}

// Search vuelve a la página 1 con el término dado y refresca.
func (c *ListController[T]) Search(ctx context.Context, term string) error {
	c.mu.Lock()
	c.busqueda = term
	c.pagination.Page = 1
	c.gen++
	c.mu.Unlock()
	return c.Fetch(ctx)
}

// ChangePage reemplaza la paginación completa, vacía los ítems pintados y refresca.
func (c *ListController[T]) ChangePage(ctx context.Context, p Pagination) error {
	c.mu.Lock()
	c.pagination = p.normalize()
	c.items = []T{}
	c.gen++
	c.mu.Unlock()
	return c.Fetch(ctx)
}

// OpenCreate prepara un borrador vacío y abre el modal de alta.
func (c *ListController[T]) OpenCreate() {
	c.open(c.binding.Empty(), true)
}

// OpenEdit copia entity al borrador y abre el modal de edición.
func (c *ListController[T]) OpenEdit(entity T) {
	c.open(entity, false)
}

func (c *ListController[T]) open(entity T, isCreate bool) {
	c.mu.Lock()
	c.draft = entity
	c.isCreate = isCreate
	c.formToken++
	token := c.formToken
	c.mu.Unlock()

	c.form.Reinitialize(entity, isCreate, token)
	titulo := "Editar " + c.binding.Nombre
	if isCreate {
		titulo = "Crear " + c.binding.Nombre
	}
	c.upsert.Open(titulo)
}

// OpenDelete fija la entidad a borrar y abre la confirmación.
func (c *ListController[T]) OpenDelete(entity T) {
	c.mu.Lock()
	c.draft = entity
	c.mu.Unlock()
	c.confirm.Open("Eliminar " + c.binding.Nombre)
}

// Cancel propaga la cancelación del formulario (cierra el modal de alta/edición).
func (c *ListController[T]) Cancel() {
	c.form.Cancel()
}

// SubmitForm valida el formulario y, si es válido, envía el borrador resultante.
func (c *ListController[T]) SubmitForm(ctx context.Context) error {
	draft, err := c.form.Submit()
	if err != nil {
		return err
	}
	return c.Submit(ctx, draft)
}

// Submit crea si draft no tiene identificador y actualiza si lo tiene. Si falla,
// el modal sigue abierto y el borrador intacto.
func (c *ListController[T]) Submit(ctx context.Context, draft T) error {
	id := c.binding.ID(draft)
	creating := id == ""

	var (
		msg    string
		err    error
		accion = "actualizar"
	)
	if creating {
		accion = "crear"
		env, e := c.client.Create(ctx, c.binding.CreatePayload(draft))
		err = e
		if env != nil {
			msg = env.Message
		}
	} else {
		env, e := c.client.Update(ctx, id, c.binding.UpdatePayload(draft))
		err = e
		if env != nil {
			msg = env.Message
		}
	}
	if err != nil {
		c.log.Warn().Err(err).Str("accion", accion).Str("id", id).Msg("escritura fallida")
		c.notifier.Error("Error", domain.MessageOf(err, fmt.Sprintf("Error al %s %s", accion, c.binding.nombreMinusculas())))
		return fmt.Errorf("%s %s: %w", accion, c.binding.nombreMinusculas(), err)
	}

	c.notifier.Success("Éxito", msg)
	c.upsert.Close()
	if creating {
		c.resetDraft()
	}
	c.refresh(ctx)
	return nil
}

// Delete borra por identificador; si falla, nada cambia.
func (c *ListController[T]) Delete(ctx context.Context, entity T) error {
	id := c.binding.ID(entity)
	env, err := c.client.Delete(ctx, id)
	if err != nil {
		c.log.Warn().Err(err).Str("id", id).Msg("borrado fallido")
		c.notifier.Error("Error", domain.MessageOf(err, "Error al eliminar "+c.binding.nombreMinusculas()))
		return fmt.Errorf("eliminar %s: %w", c.binding.nombreMinusculas(), err)
	}
	c.notifier.Success("Éxito", env.Message)
	c.confirm.Close()
	c.upsert.Close()
	c.resetDraft()
	c.refresh(ctx)
	return nil
}

// Patch actualiza una entidad del listado sin pasar por el formulario (p. ej. activar/desactivar).
func (c *ListController[T]) Patch(ctx context.Context, entity T, mutate func(*T)) error {
	mutate(&entity)
	id := c.binding.ID(entity)
	env, err := c.client.Update(ctx, id, c.binding.UpdatePayload(entity))
	if err != nil {
		c.notifier.Error("Error", domain.MessageOf(err, "Error al actualizar "+c.binding.nombreMinusculas()))
		return fmt.Errorf("actualizar %s: %w", c.binding.nombreMinusculas(), err)
	}
	c.notifier.Success("Éxito", env.Message)
	c.refresh(ctx)
	return nil
}

// Get lee una entidad por identificador.
func (c *ListController[T]) Get(ctx context.Context, id string) (T, error) {
	env, err := c.client.Get(ctx, id)
	if err != nil {
		var zero T
		c.notifier.Error("Error", domain.MessageOf(err, "Error al obtener "+c.binding.nombreMinusculas()))
		return zero, fmt.Errorf("obtener %s %s: %w", c.binding.nombreMinusculas(), id, err)
	}
	return env.Data, nil
}

// Find busca id entre los ítems de la página pintada.
func (c *ListController[T]) Find(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if c.binding.ID(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Snapshot estado observable del listado.
type Snapshot[T any] struct {
	Items      []T
	Pagination Pagination
	Busqueda   string
	Loading    bool
	Draft      T
	IsCreate   bool
	FormToken  uint64
}

func (c *ListController[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return Snapshot[T]{
		Items:      items,
		Pagination: c.pagination,
		Busqueda:   c.busqueda,
		Loading:    c.loading.Load(),
		Draft:      c.draft,
		IsCreate:   c.isCreate,
		FormToken:  c.formToken,
	}
}

func (c *ListController[T]) resetDraft() {
	c.mu.Lock()
	c.draft = c.binding.Empty()
	c.isCreate = true
	c.mu.Unlock()
}

// refresh recarga tras una escritura exitosa; un fallo ya quedó notificado por Fetch.
func (c *ListController[T]) refresh(ctx context.Context) {
	if err := c.Fetch(ctx); err != nil {
		c.log.Debug().Err(err).Msg("recarga tras escritura")
	}
}
