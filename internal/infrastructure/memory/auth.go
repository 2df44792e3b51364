package memory

import (
	"context"
	"net/http"
	"time"

	"github.com/jhoicas/tesoreria-console/internal/application/dto"
	"github.com/jhoicas/tesoreria-console/internal/domain"
	"github.com/jhoicas/tesoreria-console/internal/domain/entity"
	"github.com/jhoicas/tesoreria-console/pkg/jwt"
)

// JWTConfig configuración para generación de tokens del modo demo.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthService login contra los usuarios del Store: bcrypt + JWT, mismo envelope que la API.
type AuthService struct {
	usuarios *Store[entity.Usuario]
	jwtCfg   JWTConfig
}

func NewAuthService(usuarios *Store[entity.Usuario], jwtCfg JWTConfig) *AuthService {
	return &AuthService{usuarios: usuarios, jwtCfg: jwtCfg}
}

// Login verifica userName/password, genera JWT y retorna token + usuario.
func (a *AuthService) Login(_ context.Context, in dto.LoginRequest) (*dto.Envelope[dto.LoginResponse], error) {
	id, user, ok := a.usuarios.Find(func(u entity.Usuario) bool { return u.UserName == in.UserName })
	if !ok || !a.usuarios.VerifySecret(id, in.Password) {
		return nil, unauthorized("Usuario o contraseña incorrectos")
	}
	if !user.Activo {
		return nil, unauthorized("Usuario inactivo")
	}
	token, err := jwt.Generate(a.jwtCfg.Secret, user.UsuarioID, user.RolID, user.UserName, a.jwtCfg.Issuer, a.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.Envelope[dto.LoginResponse]{
		Success:    true,
		StatusCode: "200",
		Path:       "/auth/login",
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Message:    "Bienvenido " + user.NombreCompleto,
		Data:       dto.LoginResponse{User: user, Token: token},
	}, nil
}

func unauthorized(msg string) error {
	return &domain.RemoteError{StatusCode: http.StatusUnauthorized, Path: "/auth/login", Message: msg, Cause: domain.ErrUnauthorized}
}
