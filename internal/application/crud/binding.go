package crud

import "strings"

// FieldRule reglas de validación de un campo, en sintaxis de go-playground/validator
// (ej. "required,min=2").
type FieldRule[T any] struct {
	Field string
	Tag   string
	Value func(T) any
}

// Binding configura el par listado/formulario para una entidad concreta.
type Binding[T any] struct {
	// Nombre legible de la entidad ("Rol", "Tipo de Moneda"); se usa en títulos y mensajes.
	Nombre string
	// Empty devuelve la plantilla vacía con los valores por defecto de cada campo.
	Empty func() T
	// ID devuelve el identificador; vacío significa "no persistido".
	ID func(T) string
	// Project copia en dst los campos expuestos en el formulario tomados de src.
	Project func(dst *T, src T)
	// Rules devuelve las reglas por campo; isCreate permite reglas solo de alta.
	Rules func(isCreate bool) []FieldRule[T]
	// CreatePayload y UpdatePayload devuelven los campos permitidos en escritura.
	CreatePayload func(T) any
	UpdatePayload func(T) any
	// Redact limpia campos que no deben volver al navegador (opcional).
	Redact func(T) T
}

func (b Binding[T]) nombreMinusculas() string {
	return strings.ToLower(b.Nombre)
}
