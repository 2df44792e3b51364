package http

import (
	"github.com/jhoicas/tesoreria-console/internal/application/auth"
	"github.com/jhoicas/tesoreria-console/internal/application/corporativo"
	"github.com/jhoicas/tesoreria-console/internal/application/crud"
	"github.com/jhoicas/tesoreria-console/internal/application/tesoreria"
	"github.com/jhoicas/tesoreria-console/internal/domain/entity"
)

// Sources acceso a datos de cada entidad, venga de la API remota o del backend en memoria.
type Sources struct {
	Roles    crud.DataAccess[entity.Rol]
	Usuarios crud.DataAccess[entity.Usuario]
	Puestos  crud.DataAccess[entity.Puesto]

	Tesoreria tesoreria.Clients

	// Corporativo opcional; sin él no se monta la página.
	Corporativo crud.DataAccess[entity.EmpresaCorporativa]
}

// BuildPages arma todas las páginas con las mismas dependencias comunes.
func BuildPages(deps crud.PageDeps, src Sources) Pages {
	p := Pages{
		Roles:            auth.NewRolPage(deps, src.Roles),
		Usuarios:         auth.NewUsuarioPage(deps, src.Usuarios, src.Roles, src.Puestos),
		Puestos:          auth.NewPuestoPage(deps, src.Puestos),
		Empresas:         tesoreria.NewEmpresaPage(deps, src.Tesoreria),
		Bancos:           tesoreria.NewBancoPage(deps, src.Tesoreria),
		Cuentas:          tesoreria.NewCuentaBancariaPage(deps, src.Tesoreria),
		TiposMoneda:      tesoreria.NewTipoMonedaPage(deps, src.Tesoreria),
		TiposTransaccion: tesoreria.NewTipoTransaccionPage(deps, src.Tesoreria),
	}
	if src.Corporativo != nil {
		p.Corporativo = corporativo.NewEmpresaPage(deps, src.Corporativo)
	}
	return p
}
