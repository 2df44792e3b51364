// Package session mantiene la identidad autenticada de la consola: el único estado
// compartido entre páginas. Se hidrata desde el almacenamiento local al arrancar.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/tesoreria-console/internal/domain/entity"
	pkgjwt "github.com/jhoicas/tesoreria-console/pkg/jwt"
)

// Claves fijas del almacenamiento local.
const (
	KeyToken   = "token"
	KeyUser    = "user"
	KeyAccesos = "accesos"
)

// Storage almacenamiento clave/valor persistente del lado cliente.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, keys ...string) error
}

// Anonymous identidad mostrada cuando no hay sesión.
func Anonymous() entity.Usuario {
	return entity.Usuario{
		NombreCompleto: "Sin autenticar",
		Rol:            &entity.Rol{Nombre: "Sin autenticar"},
	}
}

// Context identidad vigente del operador.
type Context struct {
	store Storage
	log   zerolog.Logger
	now   func() time.Time

	mu    sync.RWMutex
	token string
	user  *entity.Usuario
}

// Load construye el contexto leyendo token y usuario guardados. Un usuario guardado
// ilegible se descarta y la consola arranca sin sesión.
func Load(ctx context.Context, store Storage, log zerolog.Logger) (*Context, error) {
	s := &Context{store: store, log: log, now: time.Now}

	token, _, err := store.Get(ctx, KeyToken)
	if err != nil {
		return nil, fmt.Errorf("leer token: %w", err)
	}
	raw, ok, err := store.Get(ctx, KeyUser)
	if err != nil {
		return nil, fmt.Errorf("leer usuario: %w", err)
	}
	s.token = token
	if ok && raw != "" {
		var u entity.Usuario
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			log.Warn().Err(err).Msg("usuario guardado ilegible; se ignora")
		} else {
			s.user = &u
		}
	}
	return s, nil
}

// Set guarda la identidad tras un login exitoso. La clave nunca se persiste.
func (s *Context) Set(ctx context.Context, token string, user entity.Usuario) error {
	user.Clave = ""
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("serializar usuario: %w", err)
	}
	if token != "" {
		if err := s.store.Set(ctx, KeyToken, token); err != nil {
			return fmt.Errorf("guardar token: %w", err)
		}
	}
	if err := s.store.Set(ctx, KeyUser, string(raw)); err != nil {
		return fmt.Errorf("guardar usuario: %w", err)
	}

	s.mu.Lock()
	if token != "" {
		s.token = token
	}
	s.user = &user
	s.mu.Unlock()
	s.log.Info().Str("userName", user.UserName).Msg("sesión iniciada")
	return nil
}

// Clear borra token, usuario y accesos.
func (s *Context) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	if err := s.store.Remove(ctx, KeyToken, KeyUser, KeyAccesos); err != nil {
		return fmt.Errorf("limpiar sesión: %w", err)
	}
	return nil
}

// User identidad vigente, o Anonymous si no hay.
func (s *Context) User() entity.Usuario {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return Anonymous()
	}
	return *s.user
}

// Token token guardado (puede estar vencido).
func (s *Context) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsAuthenticated hay token y no está vencido. El token se inspecciona sin verificar
// la firma: solo la API conoce el secreto.
func (s *Context) IsAuthenticated() bool {
	token := s.Token()
	if token == "" {
		return false
	}
	return !pkgjwt.Expired(token, s.now())
}

// TokenFunc adapta Token para los clientes que firman peticiones salientes.
func (s *Context) TokenFunc() func() string { return s.Token }
