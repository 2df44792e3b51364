package export

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// gridColumns ancho de la grilla de Maroto.
const gridColumns = 12

// PDF genera el listado en A4 apaisado y devuelve sus bytes.
func PDF(t Table) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(t.Titulo, true).
		WithAuthor(t.Autor, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(t))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	sizes := columnSizes(len(t.Headers))
	m.AddRows(headerRow(t.Headers, sizes))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))
	for _, r := range t.Rows {
		m.AddRows(dataRow(r, sizes))
	}
	if len(t.Rows) == 0 {
		m.AddRows(row.New(8).Add(col.New(gridColumns).Add(
			text.New("Sin registros", props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 2}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow(t Table) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(t.Titulo, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("%d registros", len(t.Rows)), props.Text{Size: 8, Align: align.Right, Top: 2, Color: colorGray}),
			text.New("Generado: "+t.At.Format("02/01/2006 15:04"), props.Text{Size: 8, Align: align.Right, Top: 7, Color: colorGray}),
		),
	)
}

func headerRow(headers []string, sizes []int) core.Row {
	cols := make([]core.Col, len(headers))
	for i, h := range headers {
		cols[i] = col.New(sizes[i]).Add(text.New(h, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(cols...)
}

func dataRow(values []string, sizes []int) core.Row {
	cols := make([]core.Col, len(sizes))
	for i := range sizes {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		cols[i] = col.New(sizes[i]).Add(text.New(v, props.Text{Size: 8, Top: 1, Left: 1, Right: 1}))
	}
	return row.New(7).Add(cols...)
}

// columnSizes reparte la grilla entre n columnas; el sobrante va a la primera.
func columnSizes(n int) []int {
	if n <= 0 {
		return nil
	}
	if n > gridColumns {
		n = gridColumns
	}
	sizes := make([]int, n)
	base := gridColumns / n
	for i := range sizes {
		sizes[i] = base
	}
	sizes[0] += gridColumns - base*n
	return sizes
}
