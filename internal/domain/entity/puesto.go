package entity

// Puesto cargo dentro de la organización; lo referencia Usuario.PuestoID.
type Puesto struct {
	PuestoID string    `json:"puestoId,omitempty"`
	Nombre   string    `json:"nombre"`
	Usuarios []Usuario `json:"usuarios,omitempty"`
}
