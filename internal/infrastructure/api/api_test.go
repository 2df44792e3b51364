package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tesoreria-console/internal/application/crud"
	"github.com/jhoicas/tesoreria-console/internal/application/dto"
	"github.com/jhoicas/tesoreria-console/internal/domain"
	"github.com/jhoicas/tesoreria-console/internal/domain/entity"
	"github.com/jhoicas/tesoreria-console/internal/infrastructure/api"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func writeEnvelope(w http.ResponseWriter, status int, success bool, message string, data any, meta *dto.Metadata) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success":    success,
		"statusCode": http.StatusText(status),
		"path":       "",
		"timestamp":  time.Now().Format(time.RFC3339),
		"message":    message,
		"data":       data,
		"metadata":   meta,
	})
}

func newClient(t *testing.T, h http.HandlerFunc) *api.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return api.NewClient(api.Config{BaseURL: srv.URL, Timeout: 2 * time.Second}, func() string { return "tok-123" }, zerolog.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Resource
// ──────────────────────────────────────────────────────────────────────────────

func TestResource_ListEnviaParametrosYToken(t *testing.T) {
	var got *http.Request
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r
		writeEnvelope(w, http.StatusOK, true, "", []entity.Rol{{RolID: "r-1", Nombre: "Administrador"}},
			&dto.Metadata{Total: 23, Page: 2, Limit: 10})
	})
	roles := api.NewResource[entity.Rol](c, api.EndpointRoles)

	env, err := roles.List(context.Background(), crud.ListQuery{Page: 2, Limit: 10, Busqueda: "adm"})
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, "/auth/roles", got.URL.Path)
	assert.Equal(t, "2", got.URL.Query().Get("page"))
	assert.Equal(t, "10", got.URL.Query().Get("limit"))
	assert.Equal(t, "adm", got.URL.Query().Get("busqueda"))
	assert.False(t, got.URL.Query().Has("todos"), "todos solo se envía para la colección completa")
	assert.Equal(t, "Bearer tok-123", got.Header.Get("Authorization"))
	assert.NotEmpty(t, got.Header.Get("X-Request-Id"))

	require.Len(t, env.Data, 1)
	assert.Equal(t, "Administrador", env.Data[0].Nombre)
	assert.Equal(t, 23, env.Metadata.Total)
}

func TestResource_ListTodos(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("todos"))
		writeEnvelope(w, http.StatusOK, true, "", []entity.Puesto{}, nil)
	})
	_, err := api.NewResource[entity.Puesto](c, api.EndpointPuestos).List(context.Background(), crud.ListQuery{Page: 1, Limit: 10, Todos: true})
	require.NoError(t, err)
}

func TestResource_UpdateEnviaPayloadAlID(t *testing.T) {
	var method, path string
	var body map[string]any
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		writeEnvelope(w, http.StatusOK, true, "Banco actualizado", entity.Banco{BancoID: "b-1"}, nil)
	})
	env, err := api.NewResource[entity.Banco](c, api.EndpointBanco).
		Update(context.Background(), "b-1", map[string]any{"nombre": "Banco Uno", "nombreCorto": "BU"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/tesoreria/banco/b-1", path)
	assert.Equal(t, map[string]any{"nombre": "Banco Uno", "nombreCorto": "BU"}, body)
	assert.Equal(t, "Banco actualizado", env.Message)
}

func TestResource_DeleteYCreate(t *testing.T) {
	var calls []string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		writeEnvelope(w, http.StatusOK, true, "ok", entity.TipoMoneda{}, nil)
	})
	res := api.NewResource[entity.TipoMoneda](c, api.EndpointTipoMoneda)
	_, err := res.Create(context.Background(), map[string]any{"descripcion": "Dólar", "simbolo": "USD"})
	require.NoError(t, err)
	_, err = res.Delete(context.Background(), "tm-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"POST /tesoreria/tipo-moneda", "DELETE /tesoreria/tipo-moneda/tm-1"}, calls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores
// ──────────────────────────────────────────────────────────────────────────────

func TestDo_StatusNoExitosoConMensaje(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusConflict, false, "El rol ya existe", nil, nil)
	})
	_, err := api.NewResource[entity.Rol](c, api.EndpointRoles).Create(context.Background(), map[string]any{"nombre": "Admin"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRemote)

	var re *domain.RemoteError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, http.StatusConflict, re.StatusCode)
	assert.Equal(t, "El rol ya existe", domain.MessageOf(err, "Error al crear rol"))
}

func TestDo_SuccessFalseConStatus200(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, false, "Operación rechazada", nil, nil)
	})
	_, err := api.NewResource[entity.Rol](c, api.EndpointRoles).Get(context.Background(), "r-1")
	require.ErrorIs(t, err, domain.ErrRemote)
	assert.Equal(t, "Operación rechazada", domain.MessageOf(err, ""))
}

func TestDo_CuerpoIlegible(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})
	_, err := api.NewResource[entity.Rol](c, api.EndpointRoles).Get(context.Background(), "r-1")
	require.ErrorIs(t, err, domain.ErrRemote)
	assert.Equal(t, "Error al obtener rol", domain.MessageOf(err, "Error al obtener rol"))
}

func TestDo_ErrorDeTransporte(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	c := api.NewClient(api.Config{BaseURL: srv.URL, Timeout: time.Second}, nil, zerolog.Nop())

	_, err := api.NewResource[entity.Rol](c, api.EndpointRoles).List(context.Background(), crud.ListQuery{Page: 1, Limit: 10})
	require.ErrorIs(t, err, domain.ErrRemote)
	var re *domain.RemoteError
	require.True(t, errors.As(err, &re))
	assert.Zero(t, re.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login y consultas adicionales
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthClient_Login(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req dto.LoginRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "jperez", req.UserName)
		writeEnvelope(w, http.StatusOK, true, "Bienvenido", dto.LoginResponse{
			User:  entity.Usuario{UsuarioID: "u-1", UserName: "jperez"},
			Token: "jwt-token",
		}, nil)
	})
	env, err := api.NewAuthClient(c).Login(context.Background(), dto.LoginRequest{UserName: "jperez", Password: "secreta1"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", env.Data.Token)
	assert.Equal(t, "u-1", env.Data.User.UsuarioID)
}

func TestEmpresaClient_PorMoneda(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tesoreria/empresa/por-moneda", r.URL.Path)
		assert.Equal(t, "tm-1", r.URL.Query().Get("tipoMonedaId"))
		writeEnvelope(w, http.StatusOK, true, "", []entity.Empresa{{EmpresaID: "e-1", TipoMonedaID: "tm-1"}}, nil)
	})
	empresas, err := api.NewEmpresaClient(c).PorMoneda(context.Background(), "tm-1")
	require.NoError(t, err)
	require.Len(t, empresas, 1)
	assert.Equal(t, "e-1", empresas[0].EmpresaID)
}
