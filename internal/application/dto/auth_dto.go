package dto

import "github.com/jhoicas/tesoreria-console/internal/domain/entity"

// LoginRequest credenciales enviadas a /auth/login.
type LoginRequest struct {
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse data del envelope de login.
type LoginResponse struct {
	User  entity.Usuario `json:"user"`
	Token string         `json:"token"`
}

// MeResponse identidad vigente de la consola.
type MeResponse struct {
	Authenticated bool           `json:"authenticated"`
	User          entity.Usuario `json:"user"`
}
