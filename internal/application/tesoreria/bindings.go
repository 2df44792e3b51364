// Package tesoreria páginas de maestros de tesorería: empresas, bancos, cuentas
// bancarias, tipos de moneda y tipos de transacción.
package tesoreria

import (
	"github.com/jhoicas/tesoreria-console/internal/application/crud"
	"github.com/jhoicas/tesoreria-console/internal/domain/entity"
)

func EmpresaBinding() crud.Binding[entity.Empresa] {
	payload := func(e entity.Empresa) any {
		return map[string]any{
			"nombre":       e.Nombre,
			"direccion":    e.Direccion,
			"nit":          e.Nit,
			"telefono":     e.Telefono,
			"tipoMonedaId": e.TipoMonedaID,
		}
	}
	return crud.Binding[entity.Empresa]{
		Nombre: "Empresa",
		Empty:  func() entity.Empresa { return entity.Empresa{} },
		ID:     func(e entity.Empresa) string { return e.EmpresaID },
		Project: func(dst *entity.Empresa, src entity.Empresa) {
			dst.Nombre = src.Nombre
			dst.Direccion = src.Direccion
			dst.Nit = src.Nit
			dst.Telefono = src.Telefono
			dst.TipoMonedaID = src.TipoMonedaID
		},
		Rules: func(bool) []crud.FieldRule[entity.Empresa] {
			return []crud.FieldRule[entity.Empresa]{
				{Field: "nombre", Tag: "required,min=2", Value: func(e entity.Empresa) any { return e.Nombre }},
				{Field: "direccion", Tag: "required,min=3", Value: func(e entity.Empresa) any { return e.Direccion }},
				{Field: "telefono", Tag: "required", Value: func(e entity.Empresa) any { return e.Telefono }},
				{Field: "tipoMonedaId", Tag: "required", Value: func(e entity.Empresa) any { return e.TipoMonedaID }},
			}
		},
		CreatePayload: payload,
		UpdatePayload: payload,
	}
}

func TipoMonedaBinding() crud.Binding[entity.TipoMoneda] {
	payload := func(t entity.TipoMoneda) any {
		return map[string]any{"descripcion": t.Descripcion, "simbolo": t.Simbolo}
	}
	return crud.Binding[entity.TipoMoneda]{
		Nombre: "Tipo de Moneda",
		Empty:  func() entity.TipoMoneda { return entity.TipoMoneda{} },
		ID:     func(t entity.TipoMoneda) string { return t.TipoMonedaID },
		Project: func(dst *entity.TipoMoneda, src entity.TipoMoneda) {
			dst.Descripcion = src.Descripcion
			dst.Simbolo = src.Simbolo
		},
		Rules: func(bool) []crud.FieldRule[entity.TipoMoneda] {
			return []crud.FieldRule[entity.TipoMoneda]{
				{Field: "descripcion", Tag: "required,min=2", Value: func(t entity.TipoMoneda) any { return t.Descripcion }},
				{Field: "simbolo", Tag: "required,max=6", Value: func(t entity.TipoMoneda) any { return t.Simbolo }},
			}
		},
		CreatePayload: payload,
		UpdatePayload: payload,
	}
}

// BancoBinding las cuentas del banco llegan en lecturas pero nunca se escriben desde aquí.
func BancoBinding() crud.Binding[entity.Banco] {
	payload := func(b entity.Banco) any {
		return map[string]any{"nombre": b.Nombre, "nombreCorto": b.NombreCorto}
	}
	return crud.Binding[entity.Banco]{
		Nombre: "Banco",
		Empty:  func() entity.Banco { return entity.Banco{} },
		ID:     func(b entity.Banco) string { return b.BancoID },
		Project: func(dst *entity.Banco, src entity.Banco) {
			dst.Nombre = src.Nombre
			dst.NombreCorto = src.NombreCorto
		},
		Rules: func(bool) []crud.FieldRule[entity.Banco] {
			return []crud.FieldRule[entity.Banco]{
				{Field: "nombre", Tag: "required,min=2", Value: func(b entity.Banco) any { return b.Nombre }},
				{Field: "nombreCorto", Tag: "required,min=2", Value: func(b entity.Banco) any { return b.NombreCorto }},
			}
		},
		CreatePayload: payload,
		UpdatePayload: payload,
	}
}

func CuentaBancariaBinding() crud.Binding[entity.CuentaBancaria] {
	payload := func(c entity.CuentaBancaria) any {
		p := map[string]any{
			"bancoId":      c.BancoID,
			"empresaId":    c.EmpresaID,
			"numero":       c.Numero,
			"tipoCuenta":   c.TipoCuenta,
			"tipoMonedaId": c.TipoMonedaID,
			"descripcion":  c.Descripcion,
		}
		if c.SaldoBanco != nil {
			p["saldoBanco"] = c.SaldoBanco
		}
		return p
	}
	return crud.Binding[entity.CuentaBancaria]{
		Nombre: "Cuenta Bancaria",
		Empty:  func() entity.CuentaBancaria { return entity.CuentaBancaria{} },
		ID:     func(c entity.CuentaBancaria) string { return c.CuentaBancariaID },
		Project: func(dst *entity.CuentaBancaria, src entity.CuentaBancaria) {
			dst.BancoID = src.BancoID
			dst.EmpresaID = src.EmpresaID
			dst.Numero = src.Numero
			dst.TipoCuenta = src.TipoCuenta
			dst.TipoMonedaID = src.TipoMonedaID
			dst.Descripcion = src.Descripcion
			dst.SaldoBanco = src.SaldoBanco
		},
		Rules: func(bool) []crud.FieldRule[entity.CuentaBancaria] {
			return []crud.FieldRule[entity.CuentaBancaria]{
				{Field: "bancoId", Tag: "required", Value: func(c entity.CuentaBancaria) any { return c.BancoID }},
				{Field: "empresaId", Tag: "required", Value: func(c entity.CuentaBancaria) any { return c.EmpresaID }},
				{Field: "numero", Tag: "required,min=3", Value: func(c entity.CuentaBancaria) any { return c.Numero }},
				{Field: "tipoCuenta", Tag: "required", Value: func(c entity.CuentaBancaria) any { return c.TipoCuenta }},
				{Field: "tipoMonedaId", Tag: "required", Value: func(c entity.CuentaBancaria) any { return c.TipoMonedaID }},
			}
		},
		CreatePayload: payload,
		UpdatePayload: payload,
	}
}

// TipoTransaccionBinding tipo arranca en DEBITO y solo admite los valores de entity.TiposTransaccion.
func TipoTransaccionBinding() crud.Binding[entity.TipoTransaccion] {
	payload := func(t entity.TipoTransaccion) any {
		return map[string]any{"nombre": t.Nombre, "tipo": t.Tipo}
	}
	return crud.Binding[entity.TipoTransaccion]{
		Nombre: "Tipo de Transacción",
		Empty:  func() entity.TipoTransaccion { return entity.TipoTransaccion{Tipo: entity.TipoDebito} },
		ID:     func(t entity.TipoTransaccion) string { return t.TipoTransaccionID },
		Project: func(dst *entity.TipoTransaccion, src entity.TipoTransaccion) {
			dst.Nombre = src.Nombre
			dst.Tipo = src.Tipo
		},
		Rules: func(bool) []crud.FieldRule[entity.TipoTransaccion] {
			return []crud.FieldRule[entity.TipoTransaccion]{
				{Field: "nombre", Tag: "required,min=2", Value: func(t entity.TipoTransaccion) any { return t.Nombre }},
				{Field: "tipo", Tag: "required,oneof=DEBITO CREDITO SALDO CIERRE", Value: func(t entity.TipoTransaccion) any { return string(t.Tipo) }},
			}
		},
		CreatePayload: payload,
		UpdatePayload: payload,
	}
}
