package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tesoreria-console/internal/application/auth"
	"github.com/jhoicas/tesoreria-console/internal/application/console"
	"github.com/jhoicas/tesoreria-console/internal/application/dto"
)

// AuthHandler maneja login, logout e identidad de la consola.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	toasts *console.Toasts
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, toasts *console.Toasts) *AuthHandler {
	return &AuthHandler{uc: uc, toasts: toasts}
}

// LogoutRequest motivo opcional de un cierre forzado.
type LogoutRequest struct {
	Message string `json:"message"`
}

// SessionView identidad vigente más las notificaciones pendientes.
type SessionView struct {
	dto.MeResponse
	Toasts []dto.Toast `json:"toasts"`
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Valida credenciales contra la API y guarda token y usuario en el almacenamiento local.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "userName, password"
// @Success      200   {object}  SessionView
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if _, err := h.uc.Login(c.UserContext(), in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.view())
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  LogoutRequest  false  "Motivo del cierre"
// @Success      200   {object}  SessionView
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var in LogoutRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	if err := h.uc.Logout(c.UserContext(), in.Message); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.view())
}

// Me godoc
// @Summary      Identidad vigente
// @Tags         auth
// @Produce      json
// @Success      200  {object}  SessionView
// @Router       /me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(h.view())
}

func (h *AuthHandler) view() SessionView {
	return SessionView{MeResponse: h.uc.Me(), Toasts: h.toasts.Drain()}
}
