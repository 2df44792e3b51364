package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tesoreria-console/internal/application/dto"
	"github.com/jhoicas/tesoreria-console/internal/application/session"
)

// SessionGuard rechaza con 401 si no hay una sesión vigente (token presente y no vencido).
// Con enabled=false deja pasar todo.
func SessionGuard(sess *session.Context, enabled bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !enabled {
			return c.Next()
		}
		if sess.Token() == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "inicie sesión para continuar"})
		}
		if !sess.IsAuthenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "la sesión expiró"})
		}
		c.Locals("user_name", sess.User().UserName)
		return c.Next()
	}
}
