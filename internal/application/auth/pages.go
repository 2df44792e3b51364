package auth

import (
	"github.com/jhoicas/tesoreria-console/internal/application/crud"
	"github.com/jhoicas/tesoreria-console/internal/domain/entity"
)

func NewRolPage(deps crud.PageDeps, roles crud.DataAccess[entity.Rol]) *crud.Page[entity.Rol] {
	p := crud.NewPage(deps, "Roles", roles, RolBinding())
	p.Columns = []crud.Column[entity.Rol]{
		{Header: "Nombre", Value: func(r entity.Rol) string { return r.Nombre }},
		{Header: "Administrador", Value: func(r entity.Rol) string { return crud.SiNo(r.EsAdmin) }},
		{Header: "Invitado", Value: func(r entity.Rol) string { return crud.SiNo(r.Invitado) }},
		{Header: "Activo", Value: func(r entity.Rol) string { return crud.SiNo(r.Activo) }},
	}
	p.SetActivo = func(r *entity.Rol, activo bool) { r.Activo = activo }
	return p
}

func NewPuestoPage(deps crud.PageDeps, puestos crud.DataAccess[entity.Puesto]) *crud.Page[entity.Puesto] {
	p := crud.NewPage(deps, "Puestos", puestos, PuestoBinding())
	p.Columns = []crud.Column[entity.Puesto]{
		{Header: "Nombre", Value: func(p entity.Puesto) string { return p.Nombre }},
	}
	return p
}

// NewUsuarioPage carga roles y puestos como catálogos para las listas de selección
// y para mostrar sus nombres en la tabla.
func NewUsuarioPage(
	deps crud.PageDeps,
	usuarios crud.DataAccess[entity.Usuario],
	roles crud.DataAccess[entity.Rol],
	puestos crud.DataAccess[entity.Puesto],
) *crud.Page[entity.Usuario] {
	rolCat := crud.NewCatalog(roles, func(r entity.Rol) string { return r.RolID }, func(r entity.Rol) string { return r.Nombre })
	puestoCat := crud.NewCatalog(puestos, func(p entity.Puesto) string { return p.PuestoID }, func(p entity.Puesto) string { return p.Nombre })

	p := crud.NewPage(deps, "Usuarios", usuarios, UsuarioBinding())
	crud.WithCatalog(p, rolCat)
	crud.WithCatalog(p, puestoCat)

	p.Columns = []crud.Column[entity.Usuario]{
		{Header: "Nombre", Value: nombreCompleto},
		{Header: "Usuario", Value: func(u entity.Usuario) string { return u.UserName }},
		{Header: "Correo", Value: func(u entity.Usuario) string { return u.Correo }},
		{Header: "Rol", Value: func(u entity.Usuario) string { return rolCat.Name(u.RolID) }},
		{Header: "Puesto", Value: func(u entity.Usuario) string { return puestoCat.Name(u.PuestoID) }},
		{Header: "Activo", Value: func(u entity.Usuario) string { return crud.SiNo(u.Activo) }},
	}
	p.Catalogs = func() map[string]any {
		return map[string]any{"roles": rolCat.Items(), "puestos": puestoCat.Items()}
	}
	p.SetActivo = func(u *entity.Usuario, activo bool) { u.Activo = activo }
	return p
}

func nombreCompleto(u entity.Usuario) string {
	if u.NombreCompleto != "" {
		return u.NombreCompleto
	}
	return u.ArmarNombreCompleto()
}
