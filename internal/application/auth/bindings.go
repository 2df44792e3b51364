package auth

import (
	"strings"

	"github.com/jhoicas/tesoreria-console/internal/application/crud"
	"github.com/jhoicas/tesoreria-console/internal/domain/entity"
)

// RolBinding formulario de roles: nombre de al menos 5 caracteres.
func RolBinding() crud.Binding[entity.Rol] {
	payload := func(r entity.Rol) any {
		return map[string]any{
			"nombre":   r.Nombre,
			"activo":   r.Activo,
			"invitado": r.Invitado,
			"esAdmin":  r.EsAdmin,
		}
	}
	return crud.Binding[entity.Rol]{
		Nombre: "Rol",
		Empty:  func() entity.Rol { return entity.Rol{Activo: true} },
		ID:     func(r entity.Rol) string { return r.RolID },
		Project: func(dst *entity.Rol, src entity.Rol) {
			dst.Nombre = src.Nombre
			dst.Activo = src.Activo
			dst.Invitado = src.Invitado
			dst.EsAdmin = src.EsAdmin
		},
		Rules: func(bool) []crud.FieldRule[entity.Rol] {
			return []crud.FieldRule[entity.Rol]{
				{Field: "nombre", Tag: "required,min=5", Value: func(r entity.Rol) any { return r.Nombre }},
			}
		},
		CreatePayload: payload,
		UpdatePayload: payload,
	}
}

// PuestoBinding el nombre se recorta antes de validar y de enviar.
func PuestoBinding() crud.Binding[entity.Puesto] {
	payload := func(p entity.Puesto) any { return map[string]any{"nombre": p.Nombre} }
	return crud.Binding[entity.Puesto]{
		Nombre:  "Puesto",
		Empty:   func() entity.Puesto { return entity.Puesto{} },
		ID:      func(p entity.Puesto) string { return p.PuestoID },
		Project: func(dst *entity.Puesto, src entity.Puesto) { dst.Nombre = strings.TrimSpace(src.Nombre) },
		Rules: func(bool) []crud.FieldRule[entity.Puesto] {
			return []crud.FieldRule[entity.Puesto]{
				{Field: "nombre", Tag: "required,min=3", Value: func(p entity.Puesto) any { return p.Nombre }},
			}
		},
		CreatePayload: payload,
		UpdatePayload: payload,
	}
}

// UsuarioBinding la clave solo es obligatoria en el alta; al editar, una clave vacía
// no viaja en el payload y el usuario conserva la anterior.
func UsuarioBinding() crud.Binding[entity.Usuario] {
	base := func(u entity.Usuario) map[string]any {
		var puesto any
		if u.PuestoID != "" {
			puesto = u.PuestoID
		}
		return map[string]any{
			"nombre1":   u.Nombre1,
			"nombre2":   u.Nombre2,
			"nombre3":   u.Nombre3,
			"apellido1": u.Apellido1,
			"apellido2": u.Apellido2,
			"apellido3": u.Apellido3,
			"userName":  u.UserName,
			"correo":    u.Correo,
			"rolId":     u.RolID,
			"puestoId":  puesto,
			"activo":    u.Activo,
		}
	}
	str := func(get func(entity.Usuario) string) func(entity.Usuario) any {
		return func(u entity.Usuario) any { return get(u) }
	}
	return crud.Binding[entity.Usuario]{
		Nombre: "Usuario",
		Empty:  func() entity.Usuario { return entity.Usuario{Activo: true} },
		ID:     func(u entity.Usuario) string { return u.UsuarioID },
		Project: func(dst *entity.Usuario, src entity.Usuario) {
			dst.Nombre1, dst.Nombre2, dst.Nombre3 = src.Nombre1, src.Nombre2, src.Nombre3
			dst.Apellido1, dst.Apellido2, dst.Apellido3 = src.Apellido1, src.Apellido2, src.Apellido3
			dst.UserName = src.UserName
			dst.Correo = src.Correo
			dst.Clave = src.Clave
			dst.RolID = src.RolID
			dst.PuestoID = src.PuestoID
			dst.Activo = src.Activo
		},
		Rules: func(isCreate bool) []crud.FieldRule[entity.Usuario] {
			rules := []crud.FieldRule[entity.Usuario]{
				{Field: "nombre1", Tag: "required,min=2", Value: str(func(u entity.Usuario) string { return u.Nombre1 })},
				{Field: "apellido1", Tag: "required,min=2", Value: str(func(u entity.Usuario) string { return u.Apellido1 })},
				{Field: "userName", Tag: "required,min=4", Value: str(func(u entity.Usuario) string { return u.UserName })},
				{Field: "correo", Tag: "required,email", Value: str(func(u entity.Usuario) string { return u.Correo })},
				{Field: "rolId", Tag: "required", Value: str(func(u entity.Usuario) string { return u.RolID })},
			}
			if isCreate {
				rules = append(rules, crud.FieldRule[entity.Usuario]{
					Field: "clave", Tag: "required,min=6", Value: str(func(u entity.Usuario) string { return u.Clave }),
				})
			}
			return rules
		},
		CreatePayload: func(u entity.Usuario) any {
			p := base(u)
			p["clave"] = u.Clave
			return p
		},
		UpdatePayload: func(u entity.Usuario) any {
			p := base(u)
			if u.Clave != "" {
				p["clave"] = u.Clave
			}
			return p
		},
		Redact: func(u entity.Usuario) entity.Usuario {
			u.Clave = ""
			return u
		},
	}
}
