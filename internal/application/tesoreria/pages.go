package tesoreria

import (
	"context"
	"strconv"

	"github.com/jhoicas/tesoreria-console/internal/application/crud"
	"github.com/jhoicas/tesoreria-console/internal/domain/entity"
)

// EmpresaFinder consultas de empresas fuera del CRUD.
type EmpresaFinder interface {
	PorMoneda(ctx context.Context, tipoMonedaID string) ([]entity.Empresa, error)
}

// Clients acceso a datos de todos los maestros de tesorería.
type Clients struct {
	Empresas         crud.DataAccess[entity.Empresa]
	Bancos           crud.DataAccess[entity.Banco]
	Cuentas          crud.DataAccess[entity.CuentaBancaria]
	TiposMoneda      crud.DataAccess[entity.TipoMoneda]
	TiposTransaccion crud.DataAccess[entity.TipoTransaccion]
}

func monedaCatalog(c crud.DataAccess[entity.TipoMoneda]) *crud.Catalog[entity.TipoMoneda] {
	return crud.NewCatalog(c,
		func(t entity.TipoMoneda) string { return t.TipoMonedaID },
		func(t entity.TipoMoneda) string { return t.Descripcion + " (" + t.Simbolo + ")" })
}

func NewEmpresaPage(deps crud.PageDeps, c Clients) *crud.Page[entity.Empresa] {
	monedas := monedaCatalog(c.TiposMoneda)
	p := crud.NewPage(deps, "Empresas", c.Empresas, EmpresaBinding())
	crud.WithCatalog(p, monedas)
	p.Columns = []crud.Column[entity.Empresa]{
		{Header: "Nombre", Value: func(e entity.Empresa) string { return e.Nombre }},
		{Header: "Dirección", Value: func(e entity.Empresa) string { return e.Direccion }},
		{Header: "NIT", Value: func(e entity.Empresa) string { return orDash(e.Nit) }},
		{Header: "Teléfono", Value: func(e entity.Empresa) string { return strconv.FormatInt(e.Telefono, 10) }},
		{Header: "Moneda", Value: func(e entity.Empresa) string { return monedas.Name(e.TipoMonedaID) }},
	}
	p.Catalogs = func() map[string]any {
		return map[string]any{"tiposMoneda": monedas.Items()}
	}
	return p
}

func NewTipoMonedaPage(deps crud.PageDeps, c Clients) *crud.Page[entity.TipoMoneda] {
	p := crud.NewPage(deps, "Tipos de Moneda", c.TiposMoneda, TipoMonedaBinding())
	p.Columns = []crud.Column[entity.TipoMoneda]{
		{Header: "Descripción", Value: func(t entity.TipoMoneda) string { return t.Descripcion }},
		{Header: "Símbolo", Value: func(t entity.TipoMoneda) string { return t.Simbolo }},
	}
	return p
}

func NewBancoPage(deps crud.PageDeps, c Clients) *crud.Page[entity.Banco] {
	p := crud.NewPage(deps, "Bancos", c.Bancos, BancoBinding())
	p.Columns = []crud.Column[entity.Banco]{
		{Header: "Nombre", Value: func(b entity.Banco) string { return b.Nombre }},
		{Header: "Nombre corto", Value: func(b entity.Banco) string { return b.NombreCorto }},
		{Header: "Cuentas", Value: func(b entity.Banco) string { return strconv.Itoa(len(b.CuentasBancarias)) }},
	}
	return p
}

// NewCuentaBancariaPage carga bancos, empresas y tipos de moneda en paralelo antes del listado.
func NewCuentaBancariaPage(deps crud.PageDeps, c Clients) *crud.Page[entity.CuentaBancaria] {
	bancos := crud.NewCatalog(c.Bancos,
		func(b entity.Banco) string { return b.BancoID },
		func(b entity.Banco) string { return b.Nombre })
	empresas := crud.NewCatalog(c.Empresas,
		func(e entity.Empresa) string { return e.EmpresaID },
		func(e entity.Empresa) string { return e.Nombre })
	monedas := monedaCatalog(c.TiposMoneda)

	p := crud.NewPage(deps, "Cuentas Bancarias", c.Cuentas, CuentaBancariaBinding())
	crud.WithCatalog(p, bancos)
	crud.WithCatalog(p, empresas)
	crud.WithCatalog(p, monedas)
	p.Columns = []crud.Column[entity.CuentaBancaria]{
		{Header: "Número", Value: func(cb entity.CuentaBancaria) string { return cb.Numero }},
		{Header: "Banco", Value: func(cb entity.CuentaBancaria) string { return bancos.Name(cb.BancoID) }},
		{Header: "Empresa", Value: func(cb entity.CuentaBancaria) string { return empresas.Name(cb.EmpresaID) }},
		{Header: "Tipo", Value: func(cb entity.CuentaBancaria) string { return cb.TipoCuenta }},
		{Header: "Moneda", Value: func(cb entity.CuentaBancaria) string { return monedas.Name(cb.TipoMonedaID) }},
		{Header: "Saldo", Value: saldo},
	}
	p.Catalogs = func() map[string]any {
		return map[string]any{
			"bancos":      bancos.Items(),
			"empresas":    empresas.Items(),
			"tiposMoneda": monedas.Items(),
		}
	}
	return p
}

func NewTipoTransaccionPage(deps crud.PageDeps, c Clients) *crud.Page[entity.TipoTransaccion] {
	p := crud.NewPage(deps, "Tipos de Transacción", c.TiposTransaccion, TipoTransaccionBinding())
	p.Columns = []crud.Column[entity.TipoTransaccion]{
		{Header: "Nombre", Value: func(t entity.TipoTransaccion) string { return t.Nombre }},
		{Header: "Tipo", Value: func(t entity.TipoTransaccion) string { return string(t.Tipo) }},
	}
	p.Catalogs = func() map[string]any {
		return map[string]any{"tipos": entity.TiposTransaccion}
	}
	return p
}

func saldo(cb entity.CuentaBancaria) string {
	if cb.SaldoBanco == nil {
		return "-"
	}
	return cb.SaldoBanco.StringFixed(2)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
