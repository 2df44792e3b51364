// Package corporativo módulo heredado de empresas corporativas. No tiene API remota:
// sus datos viven en el proceso.
package corporativo

import (
	"github.com/jhoicas/tesoreria-console/internal/application/crud"
	"github.com/jhoicas/tesoreria-console/internal/domain/entity"
)

func EmpresaBinding() crud.Binding[entity.EmpresaCorporativa] {
	payload := func(e entity.EmpresaCorporativa) any {
		return map[string]any{
			"nombre":    e.Nombre,
			"direccion": e.Direccion,
			"nit":       e.Nit,
			"telefono":  e.Telefono,
			"activo":    e.Activo,
		}
	}
	return crud.Binding[entity.EmpresaCorporativa]{
		Nombre: "Empresa",
		Empty:  func() entity.EmpresaCorporativa { return entity.EmpresaCorporativa{Activo: true} },
		ID:     func(e entity.EmpresaCorporativa) string { return e.EmpresaID },
		Project: func(dst *entity.EmpresaCorporativa, src entity.EmpresaCorporativa) {
			dst.Nombre = src.Nombre
			dst.Direccion = src.Direccion
			dst.Nit = src.Nit
			dst.Telefono = src.Telefono
			dst.Activo = src.Activo
		},
		Rules: func(bool) []crud.FieldRule[entity.EmpresaCorporativa] {
			return []crud.FieldRule[entity.EmpresaCorporativa]{
				{Field: "nombre", Tag: "required,min=3", Value: func(e entity.EmpresaCorporativa) any { return e.Nombre }},
				{Field: "direccion", Tag: "required,min=3", Value: func(e entity.EmpresaCorporativa) any { return e.Direccion }},
				{Field: "telefono", Tag: "required", Value: func(e entity.EmpresaCorporativa) any { return e.Telefono }},
			}
		},
		CreatePayload: payload,
		UpdatePayload: payload,
	}
}

func NewEmpresaPage(deps crud.PageDeps, store crud.DataAccess[entity.EmpresaCorporativa]) *crud.Page[entity.EmpresaCorporativa] {
	p := crud.NewPage(deps, "Empresas Corporativas", store, EmpresaBinding())
	p.Columns = []crud.Column[entity.EmpresaCorporativa]{
		{Header: "Nombre", Value: func(e entity.EmpresaCorporativa) string { return e.Nombre }},
		{Header: "Dirección", Value: func(e entity.EmpresaCorporativa) string { return e.Direccion }},
		{Header: "NIT", Value: func(e entity.EmpresaCorporativa) string { return e.Nit }},
		{Header: "Teléfono", Value: func(e entity.EmpresaCorporativa) string { return e.Telefono }},
		{Header: "Activo", Value: func(e entity.EmpresaCorporativa) string { return crud.SiNo(e.Activo) }},
	}
	p.SetActivo = func(e *entity.EmpresaCorporativa, activo bool) { e.Activo = activo }
	return p
}
