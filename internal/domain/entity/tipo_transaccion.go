package entity

// TipoTransaccionTipo naturaleza de un tipo de transacción.
type TipoTransaccionTipo string

const (
	TipoDebito  TipoTransaccionTipo = "DEBITO"
	TipoCredito TipoTransaccionTipo = "CREDITO"
	TipoSaldo   TipoTransaccionTipo = "SALDO"
	TipoCierre  TipoTransaccionTipo = "CIERRE"
)

// TiposTransaccion valores permitidos, en el orden en que se ofrecen en el formulario.
var TiposTransaccion = []TipoTransaccionTipo{TipoDebito, TipoCredito, TipoSaldo, TipoCierre}

type TipoTransaccion struct {
	TipoTransaccionID string              `json:"tipoTransaccionId,omitempty"`
	Nombre            string              `json:"nombre"`
	Tipo              TipoTransaccionTipo `json:"tipo"`
}
