package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/tesoreria-console/internal/domain/entity"
)

// EmpresaClient recurso de empresas más la consulta por tipo de moneda.
type EmpresaClient struct {
	*Resource[entity.Empresa]
}

func NewEmpresaClient(c *Client) *EmpresaClient {
	return &EmpresaClient{Resource: NewResource[entity.Empresa](c, EndpointEmpresa)}
}

// PorMoneda empresas que operan con el tipo de moneda dado.
func (e *EmpresaClient) PorMoneda(ctx context.Context, tipoMonedaID string) ([]entity.Empresa, error) {
	env, err := do[[]entity.Empresa](ctx, e.c, http.MethodGet, EndpointEmpresaPorMoneda, url.Values{"tipoMonedaId": {tipoMonedaID}}, nil)
	if err != nil {
		return nil, err
	}
	if env.Data == nil {
		return []entity.Empresa{}, nil
	}
	return env.Data, nil
}
