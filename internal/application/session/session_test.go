package session_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tesoreria-console/internal/application/session"
	"github.com/jhoicas/tesoreria-console/internal/domain/entity"
	"github.com/jhoicas/tesoreria-console/internal/infrastructure/storage"
	pkgjwt "github.com/jhoicas/tesoreria-console/pkg/jwt"
)

func tokenValido(t *testing.T, minutos int) string {
	t.Helper()
	tok, err := pkgjwt.Generate("secreto-de-la-api", "u-1", "r-1", "jperez", "api", minutos)
	require.NoError(t, err)
	return tok
}

func TestLoad_SinDatos_Anonimo(t *testing.T) {
	s, err := session.Load(context.Background(), storage.NewMemoryStore(), zerolog.Nop())
	require.NoError(t, err)

	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, "Sin autenticar", s.User().NombreCompleto)
	assert.Equal(t, "Sin autenticar", s.User().Rol.Nombre)
}

func TestSet_PersisteYSeHidrataAlArrancar(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	s, err := session.Load(ctx, store, zerolog.Nop())
	require.NoError(t, err)

	tok := tokenValido(t, 60)
	require.NoError(t, s.Set(ctx, tok, entity.Usuario{UsuarioID: "u-1", UserName: "jperez", Clave: "no-se-guarda"}))
	assert.True(t, s.IsAuthenticated())

	raw, ok, err := store.Get(ctx, session.KeyUser)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotContains(t, raw, "no-se-guarda")

	otra, err := session.Load(ctx, store, zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, otra.IsAuthenticated())
	assert.Equal(t, "jperez", otra.User().UserName)
	assert.Equal(t, tok, otra.Token())
}

func TestClear_BorraTokenUsuarioYAccesos(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, session.KeyAccesos, `["tesoreria"]`))
	s, err := session.Load(ctx, store, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, tokenValido(t, 60), entity.Usuario{UserName: "jperez"}))

	require.NoError(t, s.Clear(ctx))
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, "Sin autenticar", s.User().NombreCompleto)
	for _, k := range []string{session.KeyToken, session.KeyUser, session.KeyAccesos} {
		_, ok, err := store.Get(ctx, k)
		require.NoError(t, err)
		assert.False(t, ok, "la clave %s debe borrarse", k)
	}
}

func TestIsAuthenticated_TokenVencido(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, session.KeyToken, tokenValido(t, -5)))

	s, err := session.Load(ctx, store, zerolog.Nop())
	require.NoError(t, err)
	assert.False(t, s.IsAuthenticated())
}

func TestLoad_UsuarioIlegibleSeIgnora(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, session.KeyUser, "{no es json"))

	s, err := session.Load(ctx, store, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "Sin autenticar", s.User().NombreCompleto)
}
