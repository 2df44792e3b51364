// Package api adaptador HTTP hacia la API remota de tesorería. Todas las respuestas
// llegan en el envelope uniforme {success, statusCode, path, timestamp, message, data, metadata}.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/tesoreria-console/internal/application/dto"
	"github.com/jhoicas/tesoreria-console/internal/domain"
)

// maxBody tope de lectura de una respuesta.
const maxBody = 4 << 20

// Config parámetros de conexión.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client cliente HTTP compartido por todos los recursos.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      func() string
	log        zerolog.Logger
}

// NewClient construye el cliente. token puede ser nil (peticiones sin Authorization).
func NewClient(cfg Config, token func() string, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: timeout},
		token:      token,
		log:        log,
	}
}

// do envía la petición y decodifica el envelope. Error de transporte, status no 2xx,
// cuerpo ilegible o success=false se devuelven como *domain.RemoteError.
func do[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (*dto.Envelope[T], error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("api: serializar %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("api: crear request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Str("request_id", reqID).Msg("api: llamada fallida")
		return nil, &domain.RemoteError{Path: path, Cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Str("request_id", reqID).
		Msg("api")
	if err != nil {
		return nil, &domain.RemoteError{StatusCode: resp.StatusCode, Path: path, Cause: err}
	}

	var env dto.Envelope[T]
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := ""
		if decodeErr == nil {
			msg = env.Message
		}
		return nil, &domain.RemoteError{StatusCode: resp.StatusCode, Path: path, Message: msg}
	}
	if decodeErr != nil {
		return nil, &domain.RemoteError{StatusCode: resp.StatusCode, Path: path, Cause: decodeErr}
	}
	if !env.Success {
		return nil, &domain.RemoteError{StatusCode: resp.StatusCode, Path: path, Message: env.Message}
	}
	return &env, nil
}
