package crud

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidForm el borrador no cumple sus reglas; nunca se envía a la red.
var ErrInvalidForm = errors.New("formulario inválido")

// ValidationError detalle por campo de un ErrInvalidForm.
type ValidationError struct {
	Fields map[string]string // campo -> regla incumplida (required, min, email...)
}

func (e *ValidationError) Error() string {
	campos := make([]string, 0, len(e.Fields))
	for f, tag := range e.Fields {
		campos = append(campos, f+"="+tag)
	}
	sort.Strings(campos)
	return fmt.Sprintf("%s: %s", ErrInvalidForm, strings.Join(campos, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidForm }

// FormController mantiene un borrador de alta o edición y sus reglas.
// La validación es síncrona y se recalcula en cada edición.
type FormController[T any] struct {
	mu       sync.Mutex
	binding  Binding[T]
	validate *validator.Validate

	original T
	draft    T
	isCreate bool
	token    uint64
	rules    []FieldRule[T]
	errs     map[string]string
	onCancel func()
}

// NewFormController construye el formulario. Si v es nil se crea un validador propio.
func NewFormController[T any](b Binding[T], v *validator.Validate) *FormController[T] {
	if v == nil {
		v = validator.New()
	}
	f := &FormController[T]{binding: b, validate: v}
	f.Reinitialize(b.Empty(), true, 0)
	return f
}

// OnCancel registra quién recibe la señal de cancelación (normalmente cierra el modal).
func (f *FormController[T]) OnCancel(fn func()) {
	f.mu.Lock()
	f.onCancel = fn
	f.mu.Unlock()
}

// Reinitialize rehace todo el estado a partir de entity. En alta se fuerzan los valores
// vacíos aunque entity traiga datos, para no arrastrar una edición anterior.
func (f *FormController[T]) Reinitialize(entity T, isCreate bool, token uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	draft := f.binding.Empty()
	if !isCreate {
		f.binding.Project(&draft, entity)
	}
	f.original = entity
	f.draft = draft
	f.isCreate = isCreate
	f.token = token
	f.rules = f.binding.Rules(isCreate)
	f.validateLocked()
}

// Edit aplica un cambio al borrador y revalida. Devuelve si el formulario quedó válido.
func (f *FormController[T]) Edit(mutate func(*T)) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	mutate(&f.draft)
	return f.validateLocked()
}

// SetValues reemplaza los campos del formulario con los de values.
func (f *FormController[T]) SetValues(values T) bool {
	return f.Edit(func(d *T) { f.binding.Project(d, values) })
}

// Validate indica si todos los campos cumplen sus reglas.
func (f *FormController[T]) Validate() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateLocked()
}

func (f *FormController[T]) validateLocked() bool {
	errs := make(map[string]string)
	for _, r := range f.rules {
		if err := f.validate.Var(r.Value(f.draft), r.Tag); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) && len(verrs) > 0 {
				errs[r.Field] = verrs[0].Tag()
			} else {
				errs[r.Field] = "invalid"
			}
		}
	}
	f.errs = errs
	return len(errs) == 0
}

// Submit devuelve la entidad original con los campos del formulario encima, solo si es válido.
func (f *FormController[T]) Submit() (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.validateLocked() {
		var zero T
		return zero, &ValidationError{Fields: copyErrors(f.errs)}
	}
	merged := f.original
	f.binding.Project(&merged, f.draft)
	return merged, nil
}

// Cancel emite la señal de cancelación sin payload.
func (f *FormController[T]) Cancel() {
	f.mu.Lock()
	fn := f.onCancel
	f.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Draft copia del borrador actual.
func (f *FormController[T]) Draft() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Errors copia de los errores por campo de la última validación.
func (f *FormController[T]) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyErrors(f.errs)
}

// Valid resultado de la última validación.
func (f *FormController[T]) Valid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.errs) == 0
}

func (f *FormController[T]) IsCreate() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.isCreate
}

func (f *FormController[T]) Token() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func copyErrors(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
