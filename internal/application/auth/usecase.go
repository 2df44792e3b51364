// Package auth páginas de seguridad (roles, usuarios, puestos) y casos de uso de sesión.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/jhoicas/tesoreria-console/internal/application/crud"
	"github.com/jhoicas/tesoreria-console/internal/application/dto"
	"github.com/jhoicas/tesoreria-console/internal/application/session"
	"github.com/jhoicas/tesoreria-console/internal/domain"
	"github.com/jhoicas/tesoreria-console/internal/domain/entity"
)

// LoginGateway endpoint de login (API remota o backend en memoria).
type LoginGateway interface {
	Login(ctx context.Context, in dto.LoginRequest) (*dto.Envelope[dto.LoginResponse], error)
}

// AuthUseCase casos de uso de autenticación: login y logout.
type AuthUseCase struct {
	gateway  LoginGateway
	session  *session.Context
	notifier crud.Notifier
	validate *validator.Validate
	log      zerolog.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(gw LoginGateway, sess *session.Context, notifier crud.Notifier, v *validator.Validate, log zerolog.Logger) *AuthUseCase {
	if v == nil {
		v = validator.New()
	}
	return &AuthUseCase{gateway: gw, session: sess, notifier: notifier, validate: v, log: log}
}

// Login valida credenciales contra la API, guarda token y usuario y devuelve la identidad.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*entity.Usuario, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: usuario y contraseña son obligatorios", domain.ErrInvalidInput)
	}
	env, err := uc.gateway.Login(ctx, in)
	if err != nil {
		uc.log.Warn().Err(err).Str("userName", in.UserName).Msg("login fallido")
		uc.notifier.Error("Error", domain.MessageOf(err, "Error al iniciar sesión"))
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, err
		}
		return nil, fmt.Errorf("login: %w", err)
	}
	user := env.Data.User
	if user.NombreCompleto == "" {
		user.NombreCompleto = user.ArmarNombreCompleto()
	}
	if err := uc.session.Set(ctx, env.Data.Token, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout limpia la sesión. Si message no está vacío se notifica como cierre forzado.
func (uc *AuthUseCase) Logout(ctx context.Context, message string) error {
	if message != "" {
		uc.notifier.Error("Sesión cerrada", message)
	}
	return uc.session.Clear(ctx)
}

// Me identidad vigente.
func (uc *AuthUseCase) Me() dto.MeResponse {
	return dto.MeResponse{Authenticated: uc.session.IsAuthenticated(), User: uc.session.User()}
}
