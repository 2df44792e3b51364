package corporativo_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tesoreria-console/internal/application/console"
	"github.com/jhoicas/tesoreria-console/internal/application/corporativo"
	"github.com/jhoicas/tesoreria-console/internal/application/crud"
	"github.com/jhoicas/tesoreria-console/internal/domain/entity"
	"github.com/jhoicas/tesoreria-console/internal/infrastructure/memory"
)

func TestEmpresaCorporativa_CicloCompleto(t *testing.T) {
	ctx := context.Background()
	toasts := console.NewToasts(zerolog.Nop())
	page := corporativo.NewEmpresaPage(crud.PageDeps{
		Notifier: toasts,
		Logger:   zerolog.Nop(),
		NewModal: func() crud.ModalSurface { return console.NewModal() },
	}, memory.NewCorporativoStore())
	require.NoError(t, page.Init(ctx))
	assert.Empty(t, page.Snapshot().Items)

	page.OpenCreate()
	assert.True(t, page.Upsert.Visible())
	page.Form().SetValues(entity.EmpresaCorporativa{Nombre: "Holding Central", Direccion: "Av. 1", Telefono: "3001234567", Activo: true})
	require.NoError(t, page.SubmitForm(ctx))
	assert.False(t, page.Upsert.Visible())

	snap := page.Snapshot()
	require.Len(t, snap.Items, 1)
	created := snap.Items[0]
	assert.NotEmpty(t, created.EmpresaID)

	require.NoError(t, page.Patch(ctx, created, func(e *entity.EmpresaCorporativa) { page.SetActivo(e, false) }))
	assert.False(t, page.Snapshot().Items[0].Activo)

	page.OpenDelete(created)
	assert.True(t, page.Confirm.Visible())
	require.NoError(t, page.Delete(ctx, created))
	assert.False(t, page.Confirm.Visible())
	assert.Empty(t, page.Snapshot().Items)

	tipos := []string{}
	for _, ts := range toasts.Drain() {
		tipos = append(tipos, ts.Tipo)
	}
	assert.Equal(t, []string{"success", "success", "success"}, tipos)
}

func TestEmpresaCorporativa_ReglasDelFormulario(t *testing.T) {
	form := crud.NewFormController(corporativo.EmpresaBinding(), nil)
	form.Reinitialize(entity.EmpresaCorporativa{}, true, 1)
	form.SetValues(entity.EmpresaCorporativa{Nombre: "AB", Direccion: "Calle 3"})

	errs := form.Errors()
	assert.Equal(t, "min", errs["nombre"])
	assert.Equal(t, "required", errs["telefono"])
	assert.NotContains(t, errs, "direccion")
}
