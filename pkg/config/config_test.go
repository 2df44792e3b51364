package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tesoreria-console/pkg/config"
)

// chdir changes the working directory for the duration of the test
// (equivalent to testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_ValoresPorDefecto(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 10, cfg.App.PageSize)
	assert.False(t, cfg.App.AuthGuard)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout())
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTP.Addr())
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("API_BASE_URL", "https://api.example.com/v1/")
	t.Setenv("PAGE_SIZE", "25")
	t.Setenv("AUTH_GUARD", "true")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/v1", cfg.API.BaseURL, "se recorta la barra final")
	assert.Equal(t, 25, cfg.App.PageSize)
	assert.True(t, cfg.App.AuthGuard)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoad_PageSizeInvalido(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PAGE_SIZE", "0")

	_, err := config.Load()
	assert.Error(t, err)
}
