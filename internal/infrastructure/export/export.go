// Package export genera archivos descargables (PDF y XLSX) a partir de la tabla
// que una página de administración tiene pintada.
package export

import "time"

// Table contenido a exportar: encabezados y filas ya formateadas.
type Table struct {
	Titulo  string
	Autor   string
	Headers []string
	Rows    [][]string
	At      time.Time
}

// Formatos soportados.
const (
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

// ContentType tipo MIME de cada formato.
func ContentType(format string) string {
	switch format {
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}
