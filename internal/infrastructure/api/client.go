// Package api implementa los adaptadores HTTP hacia el backend: verificación de
// credencial, preferencia de portal, actualización de empleado y logout.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/pkg/logger"
)

const maxResponseBytes = 1 << 20 // max 1 MB por respuesta

// Client cliente HTTP base del backend. Usa net/http de la stdlib con un
// timeout de transporte; no hay reintentos en ninguna operación.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente base. baseURL sin barra final, ej.
// "https://api.oxford.example".
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// do ejecuta una llamada JSON contra el backend y devuelve el status HTTP.
// Añade el bearer token (si hay) y un X-Request-ID por llamada. Si out no es
// nil y la respuesta es 2xx, decodifica el cuerpo en out.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) (int, error) {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("api: serializar payload: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return 0, fmt.Errorf("api: crear request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return 0, fmt.Errorf("api: timeout o cancelación: %w", ctx.Err())
		}
		return 0, fmt.Errorf("api: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("api: leer respuesta: %w", err)
	}

	c.log.Debug().Str("method", method).Str("path", path).
		Int("status", resp.StatusCode).Str("request_id", requestID).
		Msg("llamada al backend")

	if out != nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if err := json.Unmarshal(rawBody, out); err != nil {
			return resp.StatusCode, fmt.Errorf("api: decodificar respuesta: %w", err)
		}
	}
	return resp.StatusCode, nil
}

// is2xx indica si el status es de éxito.
func is2xx(status int) bool {
	return status >= 200 && status < 300
}
