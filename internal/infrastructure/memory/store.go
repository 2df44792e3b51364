// Package memory backend en proceso con la misma forma que la API remota: envelope,
// paginación, búsqueda y mensajes. Sirve el módulo corporativo y el modo demo.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tesoreria-console/internal/application/crud"
	"github.com/jhoicas/tesoreria-console/internal/application/dto"
	"github.com/jhoicas/tesoreria-console/internal/domain"
)

// Option configura un Store.
type Option[T any] func(*options[T])

type options[T any] struct {
	secretKey string
	derive    func(*T)
	now       func() time.Time
}

// WithSecret guarda el campo key como hash bcrypt aparte del registro; nunca se devuelve.
func WithSecret[T any](key string) Option[T] {
	return func(o *options[T]) { o.secretKey = key }
}

// WithDerive recalcula campos derivados tras cada escritura.
func WithDerive[T any](fn func(*T)) Option[T] {
	return func(o *options[T]) { o.derive = fn }
}

// WithClock reemplaza time.Now (tests).
func WithClock[T any](now func() time.Time) Option[T] {
	return func(o *options[T]) { o.now = now }
}

// Store colección en memoria de registros T. Los payloads se mezclan sobre el registro
// por nombre de campo JSON, igual que haría la API con un cuerpo parcial.
type Store[T any] struct {
	nombre string
	path   string
	idKey  string
	search func(T) []string
	opts   options[T]

	mu      sync.RWMutex
	order   []string
	items   map[string]T
	secrets map[string][]byte
}

var _ crud.DataAccess[struct{}] = (*Store[struct{}])(nil)

// NewStore nombre se usa en los mensajes; idKey es el campo JSON del identificador;
// search devuelve los textos contra los que se compara la búsqueda.
func NewStore[T any](nombre, path, idKey string, search func(T) []string, opts ...Option[T]) *Store[T] {
	o := options[T]{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[T]{
		nombre:  nombre,
		path:    path,
		idKey:   idKey,
		search:  search,
		opts:    o,
		items:   make(map[string]T),
		secrets: make(map[string][]byte),
	}
}

// List filtra por búsqueda difusa (sin distinguir mayúsculas ni tildes) y pagina en orden de alta.
func (s *Store[T]) List(_ context.Context, q crud.ListQuery) (*dto.Envelope[[]T], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]T, 0, len(s.order))
	for _, id := range s.order {
		it := s.items[id]
		if q.Busqueda == "" || s.matches(q.Busqueda, it) {
			matched = append(matched, it)
		}
	}

	page := matched
	if !q.Todos {
		limit := q.Limit
		if limit <= 0 {
			limit = crud.DefaultPageSize
		}
		p := q.Page
		if p < 1 {
			p = 1
		}
		start := (p - 1) * limit
		if start > len(matched) {
			start = len(matched)
		}
		end := start + limit
		if end > len(matched) {
			end = len(matched)
		}
		page = matched[start:end]
	}

	env := s.envelope(http.StatusOK, "")
	return &dto.Envelope[[]T]{
		Success:    true,
		StatusCode: env.StatusCode,
		Path:       s.path,
		Timestamp:  env.Timestamp,
		Data:       append([]T{}, page...),
		Metadata:   &dto.Metadata{Total: len(matched), Page: q.Page, Limit: q.Limit},
	}, nil
}

func (s *Store[T]) matches(term string, it T) bool {
	for _, field := range s.search(it) {
		if fuzzy.MatchNormalizedFold(term, field) {
			return true
		}
	}
	return false
}

func (s *Store[T]) Get(_ context.Context, id string) (*dto.Envelope[T], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.items[id]
	if !ok {
		return nil, s.notFound(id)
	}
	env := s.envelope(http.StatusOK, "")
	env.Data = it
	return env, nil
}

func (s *Store[T]) Create(_ context.Context, payload any) (*dto.Envelope[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields, err := toFields(payload)
	if err != nil {
		return nil, s.badRequest(err)
	}
	id := uuid.NewString()
	if err := s.takeSecret(id, fields, true); err != nil {
		return nil, err
	}
	fields[s.idKey] = id
	fields["created_at"] = s.opts.now().UTC()

	it, err := fromFields[T](fields)
	if err != nil {
		delete(s.secrets, id)
		return nil, s.badRequest(err)
	}
	if s.opts.derive != nil {
		s.opts.derive(&it)
	}
	s.items[id] = it
	s.order = append(s.order, id)

	env := s.envelope(http.StatusCreated, "Registro creado correctamente")
	env.Data = it
	return env, nil
}

func (s *Store[T]) Update(_ context.Context, id string, payload any) (*dto.Envelope[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.items[id]
	if !ok {
		return nil, s.notFound(id)
	}
	base, err := toFields(current)
	if err != nil {
		return nil, s.badRequest(err)
	}
	patch, err := toFields(payload)
	if err != nil {
		return nil, s.badRequest(err)
	}
	if err := s.takeSecret(id, patch, false); err != nil {
		return nil, err
	}
	for k, v := range patch {
		base[k] = v
	}
	base[s.idKey] = id
	base["updated_at"] = s.opts.now().UTC()

	it, err := fromFields[T](base)
	if err != nil {
		return nil, s.badRequest(err)
	}
	if s.opts.derive != nil {
		s.opts.derive(&it)
	}
	s.items[id] = it

	env := s.envelope(http.StatusOK, "Registro actualizado correctamente")
	env.Data = it
	return env, nil
}

func (s *Store[T]) Delete(_ context.Context, id string) (*dto.Envelope[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[id]
	if !ok {
		return nil, s.notFound(id)
	}
	delete(s.items, id)
	delete(s.secrets, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	env := s.envelope(http.StatusOK, "Registro eliminado correctamente")
	env.Data = it
	return env, nil
}

// Find primer registro que cumple match.
func (s *Store[T]) Find(match func(T) bool) (string, T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		if it := s.items[id]; match(it) {
			return id, it, true
		}
	}
	var zero T
	return "", zero, false
}

// Len cantidad de registros.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Filter registros que cumplen match, en orden de alta.
func (s *Store[T]) Filter(match func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []T{}
	for _, id := range s.order {
		if it := s.items[id]; match(it) {
			out = append(out, it)
		}
	}
	return out
}

// VerifySecret compara plain con el hash guardado para id.
func (s *Store[T]) VerifySecret(id, plain string) bool {
	s.mu.RLock()
	hash, ok := s.secrets[id]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(plain)) == nil
}

// takeSecret saca el campo secreto de fields y guarda su hash. En una actualización un
// secreto vacío o ausente conserva el anterior.
func (s *Store[T]) takeSecret(id string, fields map[string]any, isCreate bool) error {
	if s.opts.secretKey == "" {
		return nil
	}
	raw, present := fields[s.opts.secretKey]
	delete(fields, s.opts.secretKey)
	plain, _ := raw.(string)
	if !present || plain == "" {
		if isCreate {
			return &domain.RemoteError{StatusCode: http.StatusBadRequest, Path: s.path, Message: "La " + s.opts.secretKey + " es obligatoria"}
		}
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("memory: hash de %s: %w", s.opts.secretKey, err)
	}
	s.secrets[id] = hash
	return nil
}

func (s *Store[T]) envelope(status int, msg string) *dto.Envelope[T] {
	return &dto.Envelope[T]{
		Success:    true,
		StatusCode: fmt.Sprint(status),
		Path:       s.path,
		Timestamp:  s.opts.now().UTC().Format(time.RFC3339),
		Message:    msg,
	}
}

func (s *Store[T]) notFound(id string) error {
	return &domain.RemoteError{
		StatusCode: http.StatusNotFound,
		Path:       s.path + "/" + id,
		Message:    s.nombre + ": registro no encontrado",
		Cause:      domain.ErrNotFound,
	}
}

func (s *Store[T]) badRequest(err error) error {
	return &domain.RemoteError{StatusCode: http.StatusBadRequest, Path: s.path, Message: "Datos inválidos", Cause: err}
}

func toFields(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	fields := map[string]any{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func fromFields[T any](fields map[string]any) (T, error) {
	var out T
	raw, err := json.Marshal(fields)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(raw, &out)
	return out, err
}
