package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tesoreria-console/internal/application/dto"
	"github.com/jhoicas/tesoreria-console/internal/application/tesoreria"
)

// EmpresaHandler consultas de empresas que no pasan por el listado paginado.
type EmpresaHandler struct {
	finder tesoreria.EmpresaFinder
}

func NewEmpresaHandler(finder tesoreria.EmpresaFinder) *EmpresaHandler {
	return &EmpresaHandler{finder: finder}
}

// PorMoneda godoc
// @Summary      Empresas por tipo de moneda
// @Tags         tesoreria
// @Produce      json
// @Param        tipoMonedaId  query  string  true  "ID del tipo de moneda"
// @Success      200  {array}   entity.Empresa
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /dashboard/tesoreria/empresa/por-moneda [get]
func (h *EmpresaHandler) PorMoneda(c *fiber.Ctx) error {
	id := c.Query("tipoMonedaId")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipoMonedaId es requerido"})
	}
	empresas, err := h.finder.PorMoneda(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(empresas)
}
