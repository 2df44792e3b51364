package entity

// TipoMoneda moneda en la que opera una empresa o cuenta (GTQ, USD...).
type TipoMoneda struct {
	TipoMonedaID string `json:"tipoMonedaId,omitempty"`
	Descripcion  string `json:"descripcion"`
	Simbolo      string `json:"simbolo"`
}
