package main

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/tesoreria-console/internal/application/auth"
	"github.com/jhoicas/tesoreria-console/internal/application/console"
	"github.com/jhoicas/tesoreria-console/internal/application/crud"
	"github.com/jhoicas/tesoreria-console/internal/application/session"
	"github.com/jhoicas/tesoreria-console/internal/application/tesoreria"
	"github.com/jhoicas/tesoreria-console/internal/domain/entity"
	"github.com/jhoicas/tesoreria-console/internal/infrastructure/api"
	"github.com/jhoicas/tesoreria-console/internal/infrastructure/memory"
	"github.com/jhoicas/tesoreria-console/internal/infrastructure/storage"
	apphttp "github.com/jhoicas/tesoreria-console/internal/interfaces/http"
	"github.com/jhoicas/tesoreria-console/pkg/config"
	"github.com/jhoicas/tesoreria-console/pkg/logger"
)

// runtime todo lo que comparten los subcomandos: configuración, sesión persistida y
// acceso a datos (API remota o backend en memoria).
type runtime struct {
	cfg      *config.Config
	log      *logger.Logger
	sess     *session.Context
	toasts   *console.Toasts
	validate *validator.Validate

	gateway  auth.LoginGateway
	sources  apphttp.Sources
	empresas tesoreria.EmpresaFinder

	closers []func() error
}

func newRuntime(ctx context.Context, flags *rootFlags) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	if flags.demo {
		cfg.Demo.Enabled = true
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	rt := &runtime{cfg: cfg, log: log, validate: validator.New()}

	var store session.Storage
	if cfg.Storage.Path == "" {
		store = storage.NewMemoryStore()
	} else {
		sqlite, err := storage.OpenSQLite(ctx, cfg.Storage.Path, log.Component("storage"))
		if err != nil {
			return nil, err
		}
		rt.closers = append(rt.closers, sqlite.Close)
		store = sqlite
	}

	rt.sess, err = session.Load(ctx, store, log.Component("session"))
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("cargar sesión: %w", err)
	}
	rt.toasts = console.NewToasts(log.Component("toasts"))

	if cfg.Demo.Enabled {
		if err := rt.wireMemory(ctx); err != nil {
			rt.Close()
			return nil, err
		}
	} else {
		rt.wireAPI()
	}
	return rt, nil
}

func (rt *runtime) wireAPI() {
	client := api.NewClient(api.Config{
		BaseURL: rt.cfg.API.BaseURL,
		Timeout: rt.cfg.API.Timeout(),
	}, rt.sess.TokenFunc(), rt.log.Component("api"))

	empresas := api.NewEmpresaClient(client)
	rt.gateway = api.NewAuthClient(client)
	rt.empresas = empresas
	rt.sources = apphttp.Sources{
		Roles:    api.NewResource[entity.Rol](client, api.EndpointRoles),
		Usuarios: api.NewResource[entity.Usuario](client, api.EndpointUsuarios),
		Puestos:  api.NewResource[entity.Puesto](client, api.EndpointPuestos),
		Tesoreria: tesoreria.Clients{
			Empresas:         empresas,
			Bancos:           api.NewResource[entity.Banco](client, api.EndpointBanco),
			Cuentas:          api.NewResource[entity.CuentaBancaria](client, api.EndpointCuentaBancaria),
			TiposMoneda:      api.NewResource[entity.TipoMoneda](client, api.EndpointTipoMoneda),
			TiposTransaccion: api.NewResource[entity.TipoTransaccion](client, api.EndpointTipoTransaccion),
		},
		Corporativo: memory.NewCorporativoStore(),
	}
	rt.log.Info().Str("api", rt.cfg.API.BaseURL).Msg("usando API remota")
}

func (rt *runtime) wireMemory(ctx context.Context) error {
	backend := memory.NewBackend(memory.JWTConfig{
		Secret:     rt.cfg.Demo.JWTSecret,
		ExpMinutes: 480,
		Issuer:     rt.cfg.App.Name,
	})
	if err := backend.Seed(ctx); err != nil {
		return fmt.Errorf("datos de ejemplo: %w", err)
	}
	rt.gateway = backend.Auth
	rt.empresas = backend.Empresas
	rt.sources = apphttp.Sources{
		Roles:    backend.Roles,
		Usuarios: backend.Usuarios,
		Puestos:  backend.Puestos,
		Tesoreria: tesoreria.Clients{
			Empresas:         backend.Empresas,
			Bancos:           backend.Bancos,
			Cuentas:          backend.Cuentas,
			TiposMoneda:      backend.TiposMoneda,
			TiposTransaccion: backend.TiposTransaccion,
		},
		Corporativo: memory.NewCorporativoStore(),
	}
	rt.log.Warn().Msg("modo demo: backend en memoria (admin / admin123)")
	return nil
}

func (rt *runtime) authUseCase() *auth.AuthUseCase {
	return auth.NewAuthUseCase(rt.gateway, rt.sess, rt.toasts, rt.validate, rt.log.Component("auth"))
}

func (rt *runtime) pages() apphttp.Pages {
	return apphttp.BuildPages(crud.PageDeps{
		Validate: rt.validate,
		Notifier: rt.toasts,
		Logger:   rt.log.Component("pages"),
		PageSize: rt.cfg.App.PageSize,
		NewModal: func() crud.ModalSurface { return console.NewModal() },
	}, rt.sources)
}

// Close libera el almacenamiento local.
func (rt *runtime) Close() {
	for _, c := range rt.closers {
		if err := c(); err != nil {
			rt.log.Error().Err(err).Msg("cerrar recurso")
		}
	}
}
