package entity

// Empresa de tesorería. Telefono es numérico en la API.
type Empresa struct {
	EmpresaID    string `json:"empresaId,omitempty"`
	Nombre       string `json:"nombre"`
	Direccion    string `json:"direccion"`
	Nit          string `json:"nit,omitempty"`
	Telefono     int64  `json:"telefono"`
	TipoMonedaID string `json:"tipoMonedaId"`
}

// EmpresaCorporativa variante del módulo corporativo; vive solo en memoria del proceso.
type EmpresaCorporativa struct {
	EmpresaID string `json:"empresaId,omitempty"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Nit       string `json:"nit"`
	Telefono  string `json:"telefono"`
	Activo    bool   `json:"activo"`
}
