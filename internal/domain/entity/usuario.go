package entity

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Usuario operador de la consola. Clave es de solo escritura: la API nunca la devuelve.
type Usuario struct {
	UsuarioID          string     `json:"usuarioId,omitempty"`
	NombreCompleto     string     `json:"nombreCompleto,omitempty"`
	Nombre1            string     `json:"nombre1"`
	Nombre2            string     `json:"nombre2,omitempty"`
	Nombre3            string     `json:"nombre3,omitempty"`
	Apellido1          string     `json:"apellido1"`
	Apellido2          string     `json:"apellido2,omitempty"`
	Apellido3          string     `json:"apellido3,omitempty"`
	UserName           string     `json:"userName"`
	Clave              string     `json:"clave,omitempty"`
	Correo             string     `json:"correo"`
	FotoURL            string     `json:"fotoUrl,omitempty"`
	Huella             string     `json:"huella,omitempty"`
	LastPasswordUpdate *time.Time `json:"lastPasswordUpdate,omitempty"`
	Activo             bool       `json:"activo"`
	RolID              string     `json:"rolId"`
	PuestoID           string     `json:"puestoId,omitempty"` // opcional; null en la API

	Rol    *Rol    `json:"rol,omitempty"`
	Puesto *Puesto `json:"puesto,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

var tituloES = cases.Title(language.Spanish)

// ArmarNombreCompleto concatena nombres y apellidos no vacíos en formato título.
func (u Usuario) ArmarNombreCompleto() string {
	partes := make([]string, 0, 6)
	for _, p := range []string{u.Nombre1, u.Nombre2, u.Nombre3, u.Apellido1, u.Apellido2, u.Apellido3} {
		if p = strings.TrimSpace(p); p != "" {
			partes = append(partes, p)
		}
	}
	return tituloES.String(strings.Join(partes, " "))
}
