// Package rest implementa os repositórios contra o backend HTTP real.
// Toda requisição sai por um único Client: base URL e timeout fixos,
// bearer token quando disponível e tratamento central de 401.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// TokenSource entrega o token de sessão atual. Desacopla o Client de
// qualquer fornecedor de autenticação específico.
type TokenSource interface {
	Token() (string, error)
}

// ClearableTokenSource consegue descartar o token guardado (usado no 401).
type ClearableTokenSource interface {
	TokenSource
	Clear() error
}

// FileTokenSource guarda o token em um arquivo local, o equivalente do
// localStorage do front antigo.
type FileTokenSource struct {
	Path string
}

func (f FileTokenSource) Token() (string, error) {
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func (f FileTokenSource) Save(token string) error {
	return os.WriteFile(f.Path, []byte(token+"\n"), 0600)
}

func (f FileTokenSource) Clear() error {
	err := os.Remove(f.Path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// StaticTokenSource serve para testes e para sessões gerenciadas por um
// provedor externo.
type StaticTokenSource string

func (s StaticTokenSource) Token() (string, error) { return string(s), nil }

// APIError carrega o status e a mensagem que o backend devolveu.
type APIError struct {
	Status  int
	Message string
	Payload json.RawMessage
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
	Tokens  TokenSource
	// ManagedSession indica que um provedor externo cuida do ciclo de vida
	// da sessão; nesse caso o 401 não limpa token nem dispara o hook.
	ManagedSession bool
	// OnUnauthorized é o análogo do redirect para /login: chamado no máximo
	// uma vez por resposta 401 quando a sessão não é gerenciada.
	OnUnauthorized func()
}

type Client struct {
	baseURL        string
	http           *http.Client
	tokens         TokenSource
	managedSession bool
	onUnauthorized func()
}

func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		http:           &http.Client{Timeout: timeout},
		tokens:         cfg.Tokens,
		managedSession: cfg.ManagedSession,
		onUnauthorized: cfg.OnUnauthorized,
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

func (c *Client) put(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPut, path, nil, body)
}

func (c *Client) patch(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPatch, path, nil, body)
}

func (c *Client) delete(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("rest: encoding %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	if c.tokens != nil {
		if token, err := c.tokens.Token(); err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rest: %s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("rest: reading %s %s: %w", method, path, err)
	}

	if res.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized()
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, newAPIError(res.StatusCode, raw)
	}
	return raw, nil
}

// handleUnauthorized limpa o token local e avisa o chamador uma única vez
// por resposta. Com sessão gerenciada não fazemos nada: brigar com o
// refresh do provedor só piora.
func (c *Client) handleUnauthorized() {
	if c.managedSession {
		return
	}
	if clearable, ok := c.tokens.(ClearableTokenSource); ok {
		_ = clearable.Clear()
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}

func newAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{Status: status, Payload: raw}
	var withMessage struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &withMessage) == nil && withMessage.Message != "" {
		apiErr.Message = withMessage.Message
		return apiErr
	}
	// Alguns endpoints antigos respondem {"error": "texto"}.
	var withError struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &withError) == nil && withError.Error != "" {
		apiErr.Message = withError.Error
	}
	return apiErr
}
