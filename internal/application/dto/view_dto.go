package dto

import "time"

// Toast notificación pendiente de mostrar en el navegador.
type Toast struct {
	Tipo    string    `json:"tipo"` // success | error
	Titulo  string    `json:"titulo"`
	Mensaje string    `json:"mensaje"`
	At      time.Time `json:"at"`
}

// PaginationView estado de paginación tal como lo pinta el componente de paginación.
type PaginationView struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// ModalView estado de una superficie modal.
type ModalView struct {
	Titulo  string `json:"titulo"`
	Visible bool   `json:"visible"`
}

// PageView view-model completo de una página de administración.
type PageView[T any] struct {
	Titulo      string            `json:"titulo"`
	Items       []T               `json:"items"`
	Pagination  PaginationView    `json:"pagination"`
	Busqueda    string            `json:"busqueda"`
	Loading     bool              `json:"loading"`
	Modal       ModalView         `json:"modal"`
	DeleteModal ModalView         `json:"deleteModal"`
	Draft       T                 `json:"draft"`
	Nuevo       bool              `json:"nuevo"`
	FormKey     uint64            `json:"formKey"`
	FormErrors  map[string]string `json:"formErrors"`
	FormValid   bool              `json:"formValid"`
	Catalogos   map[string]any    `json:"catalogos,omitempty"`
	Toasts      []Toast           `json:"toasts"`
}
