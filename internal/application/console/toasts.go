package console

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/tesoreria-console/internal/application/crud"
	"github.com/jhoicas/tesoreria-console/internal/application/dto"
)

var _ crud.Notifier = (*Toasts)(nil)

// maxToasts límite de notificaciones pendientes; se descartan las más antiguas.
const maxToasts = 20

// Toasts cola de notificaciones pendientes de entregar al navegador.
type Toasts struct {
	mu    sync.Mutex
	items []dto.Toast
	log   zerolog.Logger
	now   func() time.Time
}

func NewToasts(log zerolog.Logger) *Toasts {
	return &Toasts{log: log, now: time.Now}
}

func (t *Toasts) Success(titulo, mensaje string) {
	t.log.Info().Str("titulo", titulo).Msg(mensaje)
	t.push("success", titulo, mensaje)
}

func (t *Toasts) Error(titulo, mensaje string) {
	t.log.Error().Str("titulo", titulo).Msg(mensaje)
	t.push("error", titulo, mensaje)
}

func (t *Toasts) push(tipo, titulo, mensaje string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.items = append(t.items, dto.Toast{Tipo: tipo, Titulo: titulo, Mensaje: mensaje, At: t.now()})
	if over := len(t.items) - maxToasts; over > 0 {
		t.items = t.items[over:]
	}
}

// Drain entrega y vacía la cola.
func (t *Toasts) Drain() []dto.Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := t.items
	t.items = nil
	if out == nil {
		out = []dto.Toast{}
	}
	return out
}
