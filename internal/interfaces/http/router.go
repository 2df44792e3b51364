package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/tesoreria-console/internal/application/auth"
	"github.com/jhoicas/tesoreria-console/internal/application/console"
	"github.com/jhoicas/tesoreria-console/internal/application/crud"
	"github.com/jhoicas/tesoreria-console/internal/application/session"
	"github.com/jhoicas/tesoreria-console/internal/application/tesoreria"
	"github.com/jhoicas/tesoreria-console/internal/domain/entity"
)

// Pages páginas de administración montadas por el router.
type Pages struct {
	Roles    *crud.Page[entity.Rol]
	Usuarios *crud.Page[entity.Usuario]
	Puestos  *crud.Page[entity.Puesto]

	Empresas         *crud.Page[entity.Empresa]
	Bancos           *crud.Page[entity.Banco]
	Cuentas          *crud.Page[entity.CuentaBancaria]
	TiposMoneda      *crud.Page[entity.TipoMoneda]
	TiposTransaccion *crud.Page[entity.TipoTransaccion]

	Corporativo *crud.Page[entity.EmpresaCorporativa]
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	Session   *session.Context
	Toasts    *console.Toasts
	Empresas  tesoreria.EmpresaFinder
	Pages     Pages
	AuthGuard bool
	Logger    zerolog.Logger
}

// Router registra las rutas de la consola.
func Router(app *fiber.App, deps RouterDeps) {
	autor := func() string { return deps.Session.User().NombreCompleto }

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Toasts)
	app.Post("/login", authHandler.Login)
	app.Post("/logout", authHandler.Logout)
	app.Get("/me", authHandler.Me)

	dashboard := app.Group("/dashboard", SessionGuard(deps.Session, deps.AuthGuard))

	config := dashboard.Group("/config")
	MountPage(config, "/roles", NewPageHandler(deps.Pages.Roles, deps.Toasts, autor, deps.Logger))
	MountPage(config, "/usuarios", NewPageHandler(deps.Pages.Usuarios, deps.Toasts, autor, deps.Logger))
	MountPage(config, "/puestos", NewPageHandler(deps.Pages.Puestos, deps.Toasts, autor, deps.Logger))

	tes := dashboard.Group("/tesoreria")
	if deps.Empresas != nil {
		tes.Get("/empresa/por-moneda", NewEmpresaHandler(deps.Empresas).PorMoneda)
	}
	MountPage(tes, "/empresa", NewPageHandler(deps.Pages.Empresas, deps.Toasts, autor, deps.Logger))
	MountPage(tes, "/banco", NewPageHandler(deps.Pages.Bancos, deps.Toasts, autor, deps.Logger))
	MountPage(tes, "/cuenta-bancaria", NewPageHandler(deps.Pages.Cuentas, deps.Toasts, autor, deps.Logger))
	MountPage(tes, "/tipo-moneda", NewPageHandler(deps.Pages.TiposMoneda, deps.Toasts, autor, deps.Logger))
	MountPage(tes, "/tipo-transaccion", NewPageHandler(deps.Pages.TiposTransaccion, deps.Toasts, autor, deps.Logger))

	// Empresa corporativa (persistencia simulada en proceso)
	if deps.Pages.Corporativo != nil {
		MountPage(dashboard.Group("/corporativo"), "/empresa", NewPageHandler(deps.Pages.Corporativo, deps.Toasts, autor, deps.Logger))
	}
}
