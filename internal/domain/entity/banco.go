package entity

import "github.com/shopspring/decimal"

// Banco posee cero o más cuentas; CuentasBancarias solo llega denormalizado en lecturas.
type Banco struct {
	BancoID          string           `json:"bancoId,omitempty"`
	Nombre           string           `json:"nombre"`
	NombreCorto      string           `json:"nombreCorto"`
	CuentasBancarias []CuentaBancaria `json:"cuentasBancarias,omitempty"`
}

// CuentaBancaria cuenta de una Empresa en un Banco.
type CuentaBancaria struct {
	CuentaBancariaID string           `json:"cuentaBancariaId,omitempty"`
	BancoID          string           `json:"bancoId"`
	EmpresaID        string           `json:"empresaId"`
	Numero           string           `json:"numero"`
	TipoCuenta       string           `json:"tipoCuenta"`
	TipoMonedaID     string           `json:"tipoMonedaId"`
	Descripcion      string           `json:"descripcion"`
	SaldoBanco       *decimal.Decimal `json:"saldoBanco,omitempty"`

	Banco      *Banco      `json:"banco,omitempty"`
	Empresa    *Empresa    `json:"empresa,omitempty"`
	TipoMoneda *TipoMoneda `json:"tipoMoneda,omitempty"`
}
