package entity

import "time"

// Rol agrupa permisos de usuarios del sistema.
type Rol struct {
	RolID    string `json:"rolId,omitempty"` // vacío = aún no persistido
	Nombre   string `json:"nombre"`
	Invitado bool   `json:"invitado"`
	Activo   bool   `json:"activo"`
	EsAdmin  bool   `json:"esAdmin"`

	// Relaciones (solo lectura)
	Usuarios []Usuario `json:"usuarios,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
