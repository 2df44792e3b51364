package memory

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tesoreria-console/internal/domain/entity"
)

// EmpresaStore empresas más la consulta por tipo de moneda.
type EmpresaStore struct {
	*Store[entity.Empresa]
}

func (e *EmpresaStore) PorMoneda(_ context.Context, tipoMonedaID string) ([]entity.Empresa, error) {
	return e.Filter(func(emp entity.Empresa) bool { return emp.TipoMonedaID == tipoMonedaID }), nil
}

// Backend todas las colecciones del modo demo.
type Backend struct {
	Roles            *Store[entity.Rol]
	Usuarios         *Store[entity.Usuario]
	Puestos          *Store[entity.Puesto]
	Empresas         *EmpresaStore
	Bancos           *Store[entity.Banco]
	Cuentas          *Store[entity.CuentaBancaria]
	TiposMoneda      *Store[entity.TipoMoneda]
	TiposTransaccion *Store[entity.TipoTransaccion]
	Auth             *AuthService
}

func NewBackend(jwtCfg JWTConfig) *Backend {
	usuarios := NewStore("Usuario", "/auth/usuarios", "usuarioId",
		func(u entity.Usuario) []string { return []string{u.NombreCompleto, u.UserName, u.Correo} },
		WithSecret[entity.Usuario]("clave"),
		WithDerive(func(u *entity.Usuario) { u.NombreCompleto = u.ArmarNombreCompleto() }),
	)
	return &Backend{
		Roles: NewStore("Rol", "/auth/roles", "rolId",
			func(r entity.Rol) []string { return []string{r.Nombre} }),
		Usuarios: usuarios,
		Puestos: NewStore("Puesto", "/auth/puestos", "puestoId",
			func(p entity.Puesto) []string { return []string{p.Nombre} }),
		Empresas: &EmpresaStore{NewStore("Empresa", "/tesoreria/empresa", "empresaId",
			func(e entity.Empresa) []string { return []string{e.Nombre, e.Nit, e.Direccion} })},
		Bancos: NewStore("Banco", "/tesoreria/banco", "bancoId",
			func(b entity.Banco) []string { return []string{b.Nombre, b.NombreCorto} }),
		Cuentas: NewStore("Cuenta bancaria", "/tesoreria/cuenta-bancaria", "cuentaBancariaId",
			func(c entity.CuentaBancaria) []string { return []string{c.Numero, c.Descripcion, c.TipoCuenta} }),
		TiposMoneda: NewStore("Tipo de moneda", "/tesoreria/tipo-moneda", "tipoMonedaId",
			func(t entity.TipoMoneda) []string { return []string{t.Descripcion, t.Simbolo} }),
		TiposTransaccion: NewStore("Tipo de transacción", "/tesoreria/tipo-transaccion", "tipoTransaccionId",
			func(t entity.TipoTransaccion) []string { return []string{t.Nombre, string(t.Tipo)} }),
		Auth: NewAuthService(usuarios, jwtCfg),
	}
}

// NewCorporativoStore empresas del módulo corporativo; solo existen mientras vive el proceso.
func NewCorporativoStore() *Store[entity.EmpresaCorporativa] {
	return NewStore("Empresa", "/corporativo/empresa", "empresaId",
		func(e entity.EmpresaCorporativa) []string { return []string{e.Nombre, e.Nit, e.Direccion} })
}

// Seed carga datos de ejemplo. Credenciales: admin / admin123.
func (b *Backend) Seed(ctx context.Context) error {
	admin, err := b.Roles.Create(ctx, map[string]any{"nombre": "Administrador", "activo": true, "esAdmin": true})
	if err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}
	if _, err := b.Roles.Create(ctx, map[string]any{"nombre": "Consulta", "activo": true, "invitado": true}); err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}
	tesorero, err := b.Puestos.Create(ctx, map[string]any{"nombre": "Tesorero"})
	if err != nil {
		return fmt.Errorf("seed puestos: %w", err)
	}
	if _, err := b.Usuarios.Create(ctx, map[string]any{
		"nombre1": "ana", "apellido1": "gómez", "userName": "admin", "correo": "admin@tesoreria.local",
		"rolId": admin.Data.RolID, "puestoId": tesorero.Data.PuestoID, "activo": true, "clave": "admin123",
	}); err != nil {
		return fmt.Errorf("seed usuarios: %w", err)
	}

	cop, err := b.TiposMoneda.Create(ctx, map[string]any{"descripcion": "Peso colombiano", "simbolo": "COP"})
	if err != nil {
		return fmt.Errorf("seed monedas: %w", err)
	}
	if _, err := b.TiposMoneda.Create(ctx, map[string]any{"descripcion": "Dólar estadounidense", "simbolo": "USD"}); err != nil {
		return fmt.Errorf("seed monedas: %w", err)
	}
	empresa, err := b.Empresas.Create(ctx, map[string]any{
		"nombre": "Comercializadora Andina", "direccion": "Calle 10 # 20-30", "nit": "900123456",
		"telefono": 6015550000, "tipoMonedaId": cop.Data.TipoMonedaID,
	})
	if err != nil {
		return fmt.Errorf("seed empresas: %w", err)
	}

	bancos := []struct{ nombre, corto string }{
		{"Bancolombia", "BCOL"},
		{"Banco de Bogotá", "BBOG"},
		{"Davivienda", "DAVI"},
	}
	for i, bc := range bancos {
		banco, err := b.Bancos.Create(ctx, map[string]any{"nombre": bc.nombre, "nombreCorto": bc.corto})
		if err != nil {
			return fmt.Errorf("seed bancos: %w", err)
		}
		if _, err := b.Cuentas.Create(ctx, map[string]any{
			"bancoId": banco.Data.BancoID, "empresaId": empresa.Data.EmpresaID,
			"numero": "0001-" + strconv.Itoa(1000+i), "tipoCuenta": "AHORROS", "tipoMonedaId": cop.Data.TipoMonedaID,
			"descripcion": "Cuenta principal " + bc.nombre, "saldoBanco": decimal.NewFromInt(int64(1_000_000 * (i + 1))),
		}); err != nil {
			return fmt.Errorf("seed cuentas: %w", err)
		}
	}

	for _, tt := range []entity.TipoTransaccion{
		{Nombre: "Pago a proveedor", Tipo: entity.TipoDebito},
		{Nombre: "Abono de cliente", Tipo: entity.TipoCredito},
		{Nombre: "Saldo inicial", Tipo: entity.TipoSaldo},
		{Nombre: "Cierre de mes", Tipo: entity.TipoCierre},
	} {
		if _, err := b.TiposTransaccion.Create(ctx, map[string]any{"nombre": tt.Nombre, "tipo": tt.Tipo}); err != nil {
			return fmt.Errorf("seed tipos de transacción: %w", err)
		}
	}
	return nil
}
