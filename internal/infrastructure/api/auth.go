package api

import (
	"context"
	"net/http"

	"github.com/jhoicas/tesoreria-console/internal/application/dto"
)

// AuthClient endpoint de login.
type AuthClient struct {
	c *Client
}

func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

func (a *AuthClient) Login(ctx context.Context, req dto.LoginRequest) (*dto.Envelope[dto.LoginResponse], error) {
	return do[dto.LoginResponse](ctx, a.c, http.MethodPost, EndpointLogin, nil, req)
}
