package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tesoreria-console/internal/application/auth"
	"github.com/jhoicas/tesoreria-console/internal/application/console"
	"github.com/jhoicas/tesoreria-console/internal/application/crud"
	"github.com/jhoicas/tesoreria-console/internal/application/dto"
	"github.com/jhoicas/tesoreria-console/internal/application/session"
	"github.com/jhoicas/tesoreria-console/internal/application/tesoreria"
	"github.com/jhoicas/tesoreria-console/internal/domain/entity"
	"github.com/jhoicas/tesoreria-console/internal/infrastructure/memory"
	"github.com/jhoicas/tesoreria-console/internal/infrastructure/storage"
	apphttp "github.com/jhoicas/tesoreria-console/internal/interfaces/http"
)

type testApp struct {
	app     *fiber.App
	backend *memory.Backend
}

func buildTestApp(t *testing.T, guard bool) *testApp {
	t.Helper()
	ctx := context.Background()
	log := zerolog.Nop()

	backend := memory.NewBackend(memory.JWTConfig{Secret: "secreto-de-prueba", ExpMinutes: 60, Issuer: "test"})
	require.NoError(t, backend.Seed(ctx))

	sess, err := session.Load(ctx, storage.NewMemoryStore(), log)
	require.NoError(t, err)
	toasts := console.NewToasts(log)

	deps := crud.PageDeps{
		Notifier: toasts,
		Logger:   log,
		PageSize: 10,
		NewModal: func() crud.ModalSurface { return console.NewModal() },
	}
	pages := apphttp.BuildPages(deps, apphttp.Sources{
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
	})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:    auth.NewAuthUseCase(backend.Auth, sess, toasts, nil, log),
		Session:   sess,
		Toasts:    toasts,
		Empresas:  backend.Empresas,
		Pages:     pages,
		AuthGuard: guard,
		Logger:    log,
	})
	return &testApp{app: app, backend: backend}
}

func (a *testApp) do(t *testing.T, method, path string, body any) *nethttp.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *nethttp.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ─── Listado ───────────────────────────────────────────────────────────────

func TestPage_ViewCargaElPrimerListado(t *testing.T) {
	a := buildTestApp(t, false)

	resp := a.do(t, fiber.MethodGet, "/dashboard/config/roles", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	view := decode[dto.PageView[entity.Rol]](t, resp)

	assert.Equal(t, "Roles", view.Titulo)
	assert.Len(t, view.Items, 2)
	assert.Equal(t, 2, view.Pagination.TotalItems)
	assert.Equal(t, 1, view.Pagination.TotalPages)
	assert.True(t, view.Nuevo)
	assert.False(t, view.Modal.Visible)
}

func TestPage_SearchVuelveAPaginaUno(t *testing.T) {
	a := buildTestApp(t, false)
	a.do(t, fiber.MethodGet, "/dashboard/config/roles", nil)

	resp := a.do(t, fiber.MethodPost, "/dashboard/config/roles/page", crud.Pagination{Page: 3, PageSize: 1})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	view := decode[dto.PageView[entity.Rol]](t, resp)
	assert.Equal(t, 3, view.Pagination.Page)
	assert.Empty(t, view.Items)

	resp = a.do(t, fiber.MethodPost, "/dashboard/config/roles/search", apphttp.SearchRequest{Busqueda: "admin"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	view = decode[dto.PageView[entity.Rol]](t, resp)
	assert.Equal(t, 1, view.Pagination.Page)
	assert.Equal(t, "admin", view.Busqueda)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Administrador", view.Items[0].Nombre)
}

func TestPage_NavegacionPorAccion(t *testing.T) {
	a := buildTestApp(t, false)
	a.do(t, fiber.MethodGet, "/dashboard/config/roles", nil)
	const path = "/dashboard/config/roles/page"

	resp := a.do(t, fiber.MethodPost, path, apphttp.PageRequest{Accion: apphttp.AccionTamano, Pagination: crud.Pagination{PageSize: 1}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	view := decode[dto.PageView[entity.Rol]](t, resp)
	assert.Equal(t, 1, view.Pagination.Page)
	assert.Equal(t, 1, view.Pagination.PageSize)
	assert.Equal(t, 2, view.Pagination.TotalPages)
	assert.Len(t, view.Items, 1)

	resp = a.do(t, fiber.MethodPost, path, apphttp.PageRequest{Accion: apphttp.AccionSiguiente})
	view = decode[dto.PageView[entity.Rol]](t, resp)
	assert.Equal(t, 2, view.Pagination.Page)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Consulta", view.Items[0].Nombre)

	// en la última página next no avanza
	resp = a.do(t, fiber.MethodPost, path, apphttp.PageRequest{Accion: apphttp.AccionSiguiente})
	view = decode[dto.PageView[entity.Rol]](t, resp)
	assert.Equal(t, 2, view.Pagination.Page)

	resp = a.do(t, fiber.MethodPost, path, apphttp.PageRequest{Accion: apphttp.AccionAnterior})
	view = decode[dto.PageView[entity.Rol]](t, resp)
	assert.Equal(t, 1, view.Pagination.Page)
	assert.Equal(t, "Administrador", view.Items[0].Nombre)

	resp = a.do(t, fiber.MethodPost, path, apphttp.PageRequest{Accion: apphttp.AccionIrA, Pagination: crud.Pagination{Page: 5}})
	view = decode[dto.PageView[entity.Rol]](t, resp)
	assert.Equal(t, 5, view.Pagination.Page)
	assert.Empty(t, view.Items)

	resp = a.do(t, fiber.MethodPost, path, apphttp.PageRequest{Accion: "ultima"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPage_CatalogosEnElViewModel(t *testing.T) {
	a := buildTestApp(t, false)

	resp := a.do(t, fiber.MethodGet, "/dashboard/tesoreria/cuenta-bancaria", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	view := decode[dto.PageView[entity.CuentaBancaria]](t, resp)

	assert.Len(t, view.Items, 3)
	assert.Contains(t, view.Catalogos, "bancos")
	assert.Contains(t, view.Catalogos, "empresas")
	assert.Contains(t, view.Catalogos, "tiposMoneda")
}

// ─── Formulario ────────────────────────────────────────────────────────────

func TestPage_SubmitInvalidoDevuelve422(t *testing.T) {
	a := buildTestApp(t, false)
	a.do(t, fiber.MethodGet, "/dashboard/config/roles", nil)

	resp := a.do(t, fiber.MethodPost, "/dashboard/config/roles/new", nil)
	view := decode[dto.PageView[entity.Rol]](t, resp)
	assert.True(t, view.Modal.Visible)
	assert.Equal(t, "Crear Rol", view.Modal.Titulo)

	resp = a.do(t, fiber.MethodPut, "/dashboard/config/roles/form", entity.Rol{Nombre: "abc"})
	view = decode[dto.PageView[entity.Rol]](t, resp)
	assert.False(t, view.FormValid)
	assert.Equal(t, "min", view.FormErrors["nombre"])

	resp = a.do(t, fiber.MethodPost, "/dashboard/config/roles/form/submit", nil)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Equal(t, "min", body.Fields["nombre"])
	assert.Equal(t, 2, a.backend.Roles.Len())
}

func TestPage_CrearRol(t *testing.T) {
	a := buildTestApp(t, false)
	a.do(t, fiber.MethodGet, "/dashboard/config/roles", nil)
	a.do(t, fiber.MethodPost, "/dashboard/config/roles/new", nil)
	a.do(t, fiber.MethodPut, "/dashboard/config/roles/form", entity.Rol{Nombre: "Auditor", Activo: true})

	resp := a.do(t, fiber.MethodPost, "/dashboard/config/roles/form/submit", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	view := decode[dto.PageView[entity.Rol]](t, resp)

	assert.Len(t, view.Items, 3)
	assert.False(t, view.Modal.Visible)
	require.NotEmpty(t, view.Toasts)
	assert.Equal(t, "success", view.Toasts[0].Tipo)
	assert.Equal(t, "Registro creado correctamente", view.Toasts[0].Mensaje)
}

func TestPage_EditarYCancelar(t *testing.T) {
	a := buildTestApp(t, false)
	id, _, ok := a.backend.Roles.Find(func(r entity.Rol) bool { return r.Nombre == "Consulta" })
	require.True(t, ok)

	resp := a.do(t, fiber.MethodPost, "/dashboard/config/roles/"+id+"/edit", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	view := decode[dto.PageView[entity.Rol]](t, resp)
	assert.Equal(t, "Editar Rol", view.Modal.Titulo)
	assert.False(t, view.Nuevo)
	assert.Equal(t, "Consulta", view.Draft.Nombre)

	resp = a.do(t, fiber.MethodPost, "/dashboard/config/roles/form/cancel", nil)
	view = decode[dto.PageView[entity.Rol]](t, resp)
	assert.False(t, view.Modal.Visible)
}

// ─── Borrado y activo ──────────────────────────────────────────────────────

func TestPage_Eliminar(t *testing.T) {
	a := buildTestApp(t, false)
	a.do(t, fiber.MethodGet, "/dashboard/config/roles", nil)
	id, _, _ := a.backend.Roles.Find(func(r entity.Rol) bool { return r.Nombre == "Consulta" })

	resp := a.do(t, fiber.MethodPost, "/dashboard/config/roles/"+id+"/delete", nil)
	view := decode[dto.PageView[entity.Rol]](t, resp)
	assert.True(t, view.DeleteModal.Visible)

	resp = a.do(t, fiber.MethodDelete, "/dashboard/config/roles/"+id, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	view = decode[dto.PageView[entity.Rol]](t, resp)
	assert.Len(t, view.Items, 1)
	assert.False(t, view.DeleteModal.Visible)
}

func TestPage_EliminarInexistenteDevuelve404(t *testing.T) {
	a := buildTestApp(t, false)

	resp := a.do(t, fiber.MethodDelete, "/dashboard/config/roles/no-existe", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestPage_ToggleActivo(t *testing.T) {
	a := buildTestApp(t, false)
	a.do(t, fiber.MethodGet, "/dashboard/config/roles", nil)
	id, _, _ := a.backend.Roles.Find(func(r entity.Rol) bool { return r.Nombre == "Consulta" })

	resp := a.do(t, fiber.MethodPatch, "/dashboard/config/roles/"+id+"/activo", apphttp.ActivoRequest{Activo: false})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	env, err := a.backend.Roles.Get(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, env.Data.Activo)
	assert.Equal(t, "Consulta", env.Data.Nombre)
}

func TestPage_ToggleActivoSinSoporteDevuelve405(t *testing.T) {
	a := buildTestApp(t, false)
	id, _, _ := a.backend.Puestos.Find(func(entity.Puesto) bool { return true })

	resp := a.do(t, fiber.MethodPatch, "/dashboard/config/puestos/"+id+"/activo", apphttp.ActivoRequest{Activo: true})
	assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
}

// ─── Exportación ───────────────────────────────────────────────────────────

func TestPage_ExportarXLSXyPDF(t *testing.T) {
	a := buildTestApp(t, false)
	a.do(t, fiber.MethodGet, "/dashboard/tesoreria/banco", nil)

	resp := a.do(t, fiber.MethodGet, "/dashboard/tesoreria/banco/export.xlsx", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "Bancos.xlsx")

	resp = a.do(t, fiber.MethodGet, "/dashboard/tesoreria/banco/export.pdf", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

// ─── Empresas por moneda ───────────────────────────────────────────────────

func TestEmpresa_PorMoneda(t *testing.T) {
	a := buildTestApp(t, false)
	cop, _, ok := a.backend.TiposMoneda.Find(func(m entity.TipoMoneda) bool { return m.Simbolo == "COP" })
	require.True(t, ok)

	resp := a.do(t, fiber.MethodGet, "/dashboard/tesoreria/empresa/por-moneda?tipoMonedaId="+cop, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	empresas := decode[[]entity.Empresa](t, resp)
	assert.Len(t, empresas, 1)

	resp = a.do(t, fiber.MethodGet, "/dashboard/tesoreria/empresa/por-moneda", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// ─── Sesión ────────────────────────────────────────────────────────────────

func TestSessionGuard_SinSesionDevuelve401(t *testing.T) {
	a := buildTestApp(t, true)

	resp := a.do(t, fiber.MethodGet, "/dashboard/config/roles", nil)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "MISSING_TOKEN", body.Code)
}

func TestAuth_LoginMeLogout(t *testing.T) {
	a := buildTestApp(t, true)

	resp := a.do(t, fiber.MethodPost, "/login", dto.LoginRequest{UserName: "admin", Password: "admin123"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	me := decode[apphttp.SessionView](t, resp)
	assert.True(t, me.Authenticated)
	assert.Equal(t, "Ana Gómez", me.User.NombreCompleto)
	assert.Empty(t, me.User.Clave)

	resp = a.do(t, fiber.MethodGet, "/dashboard/config/roles", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = a.do(t, fiber.MethodPost, "/logout", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	me = decode[apphttp.SessionView](t, resp)
	assert.False(t, me.Authenticated)

	resp = a.do(t, fiber.MethodGet, "/dashboard/config/roles", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_LoginCredencialesInvalidas(t *testing.T) {
	a := buildTestApp(t, false)

	resp := a.do(t, fiber.MethodPost, "/login", dto.LoginRequest{UserName: "admin", Password: "otra"})
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Usuario o contraseña incorrectos", body.Message)

	resp = a.do(t, fiber.MethodPost, "/login", dto.LoginRequest{UserName: "admin"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
