// Package console contiene las superficies de UI que la consola mantiene para el navegador:
// modales y cola de notificaciones.
package console

import (
	"sync"

	"github.com/jhoicas/tesoreria-console/internal/application/crud"
)

var _ crud.ModalSurface = (*Modal)(nil)

// Modal estado abierto/cerrado de una superficie modal. El navegador decide cómo mostrarla.
type Modal struct {
	mu      sync.RWMutex
	visible bool
	titulo  string
}

func NewModal() *Modal { return &Modal{} }

func (m *Modal) Open(titulo string) {
	m.mu.Lock()
	m.visible = true
	m.titulo = titulo
	m.mu.Unlock()
}

// Close conserva el título para que la animación de cierre lo siga mostrando.
func (m *Modal) Close() {
	m.mu.Lock()
	m.visible = false
	m.mu.Unlock()
}

func (m *Modal) Visible() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.visible
}

func (m *Modal) Titulo() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.titulo
}
