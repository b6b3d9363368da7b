// Package api implementa o executor genérico de requisições ao serviço de
// estoque e as fachadas por endpoint. Usa net/http diretamente; falhas HTTP
// são normalizadas no tipo Error com status e payload do servidor.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/estoque-client/pkg/logger"
)

// limite de leitura do corpo de resposta.
const maxBodyBytes = 4 * 1024 * 1024

// Client executor de requisições HTTP contra o serviço remoto.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// New constrói o cliente. baseURL sem barra final; timeout de rede global.
func New(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Get executa GET path?query decodificando o JSON em out.
// Parâmetros com valor vazio são omitidos, não serializados vazios.
func (c *Client) Get(ctx context.Context, path string, query map[string]string, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, nil, out)
}

// Post executa POST path com corpo JSON, decodificando a resposta em out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, nil, out)
}

// Patch executa PATCH path com corpo JSON e headers extras.
func (c *Client) Patch(ctx context.Context, path string, body any, headers map[string]string, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, headers, out)
}

// Delete executa DELETE path, decodificando a resposta em out quando não nil.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query map[string]string, body any, headers map[string]string, out any) error {
	endpoint := c.baseURL + path
	if qs := encodeQuery(query); qs != "" {
		endpoint += "?" + qs
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: serializar corpo da requisição: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("api: criar requisição: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	c.log.Debug().
		Str("method", method).
		Str("url", endpoint).
		Str("request_id", requestID).
		Msg("requisição ao serviço de estoque")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("api: requisição cancelada ou expirada: %w", ctx.Err())
		}
		return fmt.Errorf("api: chamada HTTP falhou: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("api: ler resposta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newError(resp.StatusCode, rawBody)
		c.log.Warn().
			Int("status", resp.StatusCode).
			Str("request_id", requestID).
			Str("message", apiErr.Message).
			Msg("serviço de estoque respondeu com erro")
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(rawBody, out); err != nil {
		// Resposta de sucesso que não é JSON conta como falha
		return fmt.Errorf("api: decodificar resposta (HTTP %d): %w", resp.StatusCode, err)
	}
	return nil
}

// encodeQuery monta a query string ignorando chaves com valor vazio.
func encodeQuery(query map[string]string) string {
	if len(query) == 0 {
		return ""
	}
	values := url.Values{}
	for k, v := range query {
		if v == "" {
			continue
		}
		values.Set(k, v)
	}
	return values.Encode()
}
