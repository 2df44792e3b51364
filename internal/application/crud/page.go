package crud

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// PageDeps dependencias comunes a todas las páginas de administración.
type PageDeps struct {
	Validate *validator.Validate
	Notifier Notifier
	Logger   zerolog.Logger
	PageSize int
	NewModal func() ModalSurface
}

// Column columna de la tabla de una página (también se usa al exportar).
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Page une el ListController de una entidad con lo que la capa HTTP necesita para
// pintarla: título, modales, columnas, catálogos y acciones opcionales.
type Page[T any] struct {
	*ListController[T]

	Titulo  string
	Upsert  ModalSurface
	Confirm ModalSurface
	Columns []Column[T]

	// Catalogs devuelve los catálogos de llaves foráneas para el view-model (opcional).
	Catalogs func() map[string]any
	// SetActivo marca la entidad activa/inactiva; nil si la entidad no lo soporta.
	SetActivo func(*T, bool)

	loaders []func(context.Context) error
}

// NewPage arma la página con sus propios modales y formulario.
func NewPage[T any](deps PageDeps, titulo string, client DataAccess[T], b Binding[T]) *Page[T] {
	upsert, confirm := deps.NewModal(), deps.NewModal()
	list := NewListController(ListDeps[T]{
		Client:   client,
		Binding:  b,
		Form:     NewFormController(b, deps.Validate),
		Upsert:   upsert,
		Confirm:  confirm,
		Notifier: deps.Notifier,
		Logger:   deps.Logger,
		PageSize: deps.PageSize,
	})
	return &Page[T]{ListController: list, Titulo: titulo, Upsert: upsert, Confirm: confirm}
}

// WithCatalog registra un catálogo que se carga antes del primer listado.
func WithCatalog[T, R any](p *Page[T], cat *Catalog[R]) {
	p.loaders = append(p.loaders, cat.Load)
}

// Init carga en paralelo los catálogos registrados y después el primer listado.
// Un catálogo que falla se notifica pero no impide el listado.
func (p *Page[T]) Init(ctx context.Context) error {
	if len(p.loaders) > 0 {
		var g errgroup.Group
		for _, load := range p.loaders {
			load := load
			g.Go(func() error { return load(ctx) })
		}
		if err := g.Wait(); err != nil {
			p.log.Warn().Err(err).Msg("catálogos incompletos")
			p.notifier.Error("Error", "Error al cargar catálogos de "+p.binding.nombreMinusculas())
		}
	}
	return p.Fetch(ctx)
}

// Table encabezados y filas de la página pintada, en el orden del servidor.
func (p *Page[T]) Table() (headers []string, rows [][]string) {
	headers = make([]string, len(p.Columns))
	for i, col := range p.Columns {
		headers[i] = col.Header
	}
	for _, it := range p.Snapshot().Items {
		row := make([]string, len(p.Columns))
		for i, col := range p.Columns {
			row[i] = col.Value(it)
		}
		rows = append(rows, row)
	}
	return headers, rows
}

// SiNo formatea un booleano para tablas y exportaciones.
func SiNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}
