package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/tesoreria-console/internal/application/console"
	"github.com/jhoicas/tesoreria-console/internal/application/crud"
	"github.com/jhoicas/tesoreria-console/internal/application/dto"
	"github.com/jhoicas/tesoreria-console/internal/infrastructure/export"
)

// PageHandler expone una página de administración como view-model JSON.
// El navegador solo pinta; el estado vive en la página.
type PageHandler[T any] struct {
	page   *crud.Page[T]
	toasts *console.Toasts
	autor  func() string
	log    zerolog.Logger

	initMu sync.Mutex
	ready  bool
}

// SearchRequest cuerpo de POST {page}/search.
type SearchRequest struct {
	Busqueda string `json:"busqueda"`
}

// Acciones de POST {page}/page.
const (
	AccionSiguiente = "next"
	AccionAnterior  = "prev"
	AccionIrA       = "goto"
	AccionTamano    = "size"
)

// PageRequest cuerpo de POST {page}/page.
type PageRequest struct {
	crud.Pagination
	Accion string `json:"accion,omitempty"`
}

// ActivoRequest cuerpo de PATCH {page}/{id}/activo.
type ActivoRequest struct {
	Activo bool `json:"activo"`
}

// NewPageHandler autor es el nombre que firma las exportaciones.
func NewPageHandler[T any](page *crud.Page[T], toasts *console.Toasts, autor func() string, log zerolog.Logger) *PageHandler[T] {
	if autor == nil {
		autor = func() string { return "" }
	}
	return &PageHandler[T]{page: page, toasts: toasts, autor: autor, log: log}
}

// MountPage registra todas las rutas de la página bajo path.
func MountPage[T any](r fiber.Router, path string, h *PageHandler[T]) {
	g := r.Group(path)
	g.Get("/", h.View)
	g.Post("/reload", h.Reload)
	g.Post("/search", h.Search)
	g.Post("/page", h.ChangePage)
	g.Post("/new", h.OpenCreate)
	g.Put("/form", h.EditForm)
	g.Post("/form/submit", h.Submit)
	g.Post("/form/cancel", h.Cancel)
	g.Get("/export.pdf", h.ExportPDF)
	g.Get("/export.xlsx", h.ExportXLSX)
	g.Post("/:id/edit", h.OpenEdit)
	g.Post("/:id/delete", h.OpenDelete)
	g.Delete("/:id", h.Delete)
	g.Patch("/:id/activo", h.ToggleActivo)
}

// View godoc
// @Summary      Estado de la página
// @Description  Ítems, paginación, búsqueda, modales, borrador, errores del formulario, catálogos y notificaciones pendientes.
// @Tags         paginas
// @Produce      json
// @Param        page  path  string  true  "Ruta de la página (ej. config/roles)"
// @Success      200   {object}  map[string]interface{}
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /dashboard/{page} [get]
func (h *PageHandler[T]) View(c *fiber.Ctx) error {
	h.initMu.Lock()
	first := !h.ready
	h.ready = true
	h.initMu.Unlock()
	if first {
		if err := h.page.Init(c.UserContext()); err != nil {
			h.log.Warn().Err(err).Str("pagina", h.page.Titulo).Msg("carga inicial incompleta")
		}
	}
	return c.JSON(h.view())
}

// Reload vuelve a cargar catálogos y listado.
func (h *PageHandler[T]) Reload(c *fiber.Ctx) error {
	if err := h.page.Init(c.UserContext()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.view())
}

// Search godoc
// @Summary      Buscar
// @Tags         paginas
// @Accept       json
// @Produce      json
// @Param        body  body  SearchRequest  true  "Término de búsqueda"
// @Success      200   {object}  map[string]interface{}
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /dashboard/{page}/search [post]
func (h *PageHandler[T]) Search(c *fiber.Ctx) error {
	var in SearchRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.page.Search(c.UserContext(), in.Busqueda); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.view())
}

// ChangePage godoc
// @Summary      Cambiar de página o tamaño de página
// @Description  Sin accion reemplaza la paginación completa; next, prev, goto y size parten de la vigente.
// @Tags         paginas
// @Accept       json
// @Produce      json
// @Param        body  body  PageRequest  true  "Nueva paginación o acción"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /dashboard/{page}/page [post]
func (h *PageHandler[T]) ChangePage(c *fiber.Ctx) error {
	var in PageRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	cur := h.page.Snapshot().Pagination
	var next crud.Pagination
	switch in.Accion {
	case "":
		next = in.Pagination
	case AccionSiguiente:
		next = cur.Next()
	case AccionAnterior:
		next = cur.Previous()
	case AccionIrA:
		next = cur.GoTo(in.Page)
	case AccionTamano:
		next = cur.WithPageSize(in.PageSize)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "accion desconocida: " + in.Accion})
	}
	if err := h.page.ChangePage(c.UserContext(), next); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.view())
}

func (h *PageHandler[T]) OpenCreate(c *fiber.Ctx) error {
	h.page.OpenCreate()
	return c.JSON(h.view())
}

// OpenEdit toma la entidad de la página pintada o, si no está, la pide a la API.
func (h *PageHandler[T]) OpenEdit(c *fiber.Ctx) error {
	entity, err := h.lookup(c)
	if err != nil {
		return writeError(c, err)
	}
	h.page.OpenEdit(entity)
	return c.JSON(h.view())
}

// EditForm reemplaza los campos del borrador y revalida.
func (h *PageHandler[T]) EditForm(c *fiber.Ctx) error {
	var values T
	if err := c.BodyParser(&values); err != nil {
		return badBody(c)
	}
	h.page.Form().SetValues(values)
	return c.JSON(h.view())
}

// Submit godoc
// @Summary      Guardar el formulario
// @Description  Crea si el borrador no tiene identificador; actualiza si lo tiene.
// @Tags         paginas
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /dashboard/{page}/form/submit [post]
func (h *PageHandler[T]) Submit(c *fiber.Ctx) error {
	if err := h.page.SubmitForm(c.UserContext()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.view())
}

func (h *PageHandler[T]) Cancel(c *fiber.Ctx) error {
	h.page.Cancel()
	return c.JSON(h.view())
}

func (h *PageHandler[T]) OpenDelete(c *fiber.Ctx) error {
	entity, err := h.lookup(c)
	if err != nil {
		return writeError(c, err)
	}
	h.page.OpenDelete(entity)
	return c.JSON(h.view())
}

// Delete godoc
// @Summary      Eliminar
// @Tags         paginas
// @Produce      json
// @Param        id   path  string  true  "Identificador"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /dashboard/{page}/{id} [delete]
func (h *PageHandler[T]) Delete(c *fiber.Ctx) error {
	entity, err := h.lookup(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.page.Delete(c.UserContext(), entity); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.view())
}

// ToggleActivo godoc
// @Summary      Activar o desactivar
// @Tags         paginas
// @Accept       json
// @Produce      json
// @Param        id    path  string         true  "Identificador"
// @Param        body  body  ActivoRequest  true  "Nuevo estado"
// @Success      200   {object}  map[string]interface{}
// @Failure      405   {object}  dto.ErrorResponse
// @Router       /dashboard/{page}/{id}/activo [patch]
func (h *PageHandler[T]) ToggleActivo(c *fiber.Ctx) error {
	if h.page.SetActivo == nil {
		return c.Status(fiber.StatusMethodNotAllowed).JSON(dto.ErrorResponse{Code: "NOT_SUPPORTED", Message: "la entidad no tiene estado activo"})
	}
	var in ActivoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	entity, err := h.lookup(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.page.Patch(c.UserContext(), entity, func(e *T) { h.page.SetActivo(e, in.Activo) }); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.view())
}

func (h *PageHandler[T]) ExportPDF(c *fiber.Ctx) error {
	return h.export(c, export.FormatPDF, export.PDF)
}

func (h *PageHandler[T]) ExportXLSX(c *fiber.Ctx) error {
	return h.export(c, export.FormatXLSX, export.XLSX)
}

func (h *PageHandler[T]) export(c *fiber.Ctx, format string, render func(export.Table) ([]byte, error)) error {
	headers, rows := h.page.Table()
	raw, err := render(export.Table{
		Titulo:  h.page.Titulo,
		Autor:   h.autor(),
		Headers: headers,
		Rows:    rows,
		At:      time.Now(),
	})
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(h.page.Titulo + "." + format)
	c.Set(fiber.HeaderContentType, export.ContentType(format))
	return c.Send(raw)
}

func (h *PageHandler[T]) lookup(c *fiber.Ctx) (T, error) {
	id := c.Params("id")
	if entity, ok := h.page.Find(id); ok {
		return entity, nil
	}
	return h.page.Get(c.UserContext(), id)
}

func (h *PageHandler[T]) view() dto.PageView[T] {
	snap := h.page.Snapshot()
	form := h.page.Form()
	redact := h.page.Binding().Redact
	if redact == nil {
		redact = func(v T) T { return v }
	}

	items := make([]T, len(snap.Items))
	for i, it := range snap.Items {
		items[i] = redact(it)
	}
	var catalogos map[string]any
	if h.page.Catalogs != nil {
		catalogos = h.page.Catalogs()
	}
	return dto.PageView[T]{
		Titulo: h.page.Titulo,
		Items:  items,
		Pagination: dto.PaginationView{
			Page:       snap.Pagination.Page,
			PageSize:   snap.Pagination.PageSize,
			TotalItems: snap.Pagination.TotalItems,
			TotalPages: snap.Pagination.TotalPages(),
		},
		Busqueda:    snap.Busqueda,
		Loading:     snap.Loading,
		Modal:       dto.ModalView{Titulo: h.page.Upsert.Titulo(), Visible: h.page.Upsert.Visible()},
		DeleteModal: dto.ModalView{Titulo: h.page.Confirm.Titulo(), Visible: h.page.Confirm.Visible()},
		Draft:       redact(form.Draft()),
		Nuevo:       form.IsCreate(),
		FormKey:     form.Token(),
		FormErrors:  form.Errors(),
		FormValid:   form.Valid(),
		Catalogos:   catalogos,
		Toasts:      h.toasts.Drain(),
	}
}
