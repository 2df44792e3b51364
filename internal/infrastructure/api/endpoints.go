package api

// Rutas de la API remota, relativas a la URL base.
const (
	EndpointLogin    = "/auth/login"
	EndpointRoles    = "/auth/roles"
	EndpointUsuarios = "/auth/usuarios"
	EndpointPuestos  = "/auth/puestos"

	EndpointEmpresa          = "/tesoreria/empresa"
	EndpointEmpresaPorMoneda = "/tesoreria/empresa/por-moneda"
	EndpointBanco            = "/tesoreria/banco"
	EndpointCuentaBancaria   = "/tesoreria/cuenta-bancaria"
	EndpointTipoMoneda       = "/tesoreria/tipo-moneda"
	EndpointTipoTransaccion  = "/tesoreria/tipo-transaccion"
)
