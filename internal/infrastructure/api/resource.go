package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhoicas/tesoreria-console/internal/application/crud"
	"github.com/jhoicas/tesoreria-console/internal/application/dto"
)

// Resource colección REST de la API (GET/POST en path, GET/PUT/DELETE en path/:id).
type Resource[T any] struct {
	c    *Client
	path string
}

var _ crud.DataAccess[struct{}] = (*Resource[struct{}])(nil)

func NewResource[T any](c *Client, path string) *Resource[T] {
	return &Resource[T]{c: c, path: path}
}

// List envía page, limit y busqueda siempre; todos=true solo para la colección completa.
func (r *Resource[T]) List(ctx context.Context, q crud.ListQuery) (*dto.Envelope[[]T], error) {
	return do[[]T](ctx, r.c, http.MethodGet, r.path, listParams(q), nil)
}

func (r *Resource[T]) Get(ctx context.Context, id string) (*dto.Envelope[T], error) {
	return do[T](ctx, r.c, http.MethodGet, r.item(id), nil, nil)
}

func (r *Resource[T]) Create(ctx context.Context, payload any) (*dto.Envelope[T], error) {
	return do[T](ctx, r.c, http.MethodPost, r.path, nil, payload)
}

func (r *Resource[T]) Update(ctx context.Context, id string, payload any) (*dto.Envelope[T], error) {
	return do[T](ctx, r.c, http.MethodPut, r.item(id), nil, payload)
}

func (r *Resource[T]) Delete(ctx context.Context, id string) (*dto.Envelope[T], error) {
	return do[T](ctx, r.c, http.MethodDelete, r.item(id), nil, nil)
}

func (r *Resource[T]) item(id string) string {
	return r.path + "/" + url.PathEscape(id)
}

func listParams(q crud.ListQuery) url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))
	v.Set("busqueda", q.Busqueda)
	if q.Todos {
		v.Set("todos", "true")
	}
	return v
}
