package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"socialclient/config"
)

// TokenSource отдает текущий токен сессии. Пустая строка - запрос уходит
// без авторизации. Единственная реализация - SessionStore, он загружает
// сохраненный токен до того, как клиент сможет выполнить первый запрос
type TokenSource interface {
	Token() string
}

// Client - единственный исходящий путь к REST API.
// Перед каждым запросом подставляет Authorization: Bearer <token>
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

func NewClientFromConfig(tokens TokenSource) *Client {
	return NewClient(
		config.AppConfig.API.BaseURL,
		time.Duration(config.AppConfig.API.TimeoutSeconds)*time.Second,
		tokens,
	)
}

// do выполняет запрос и декодирует JSON-ответ в out (если out != nil).
// contentType пустой - тело считается application/json
func (c *Client) do(ctx context.Context, op, method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}

	if contentType == "" {
		contentType = "application/json"
	}
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}

	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	apiRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		apiRequestsTotal.WithLabelValues(op, "error").Inc()
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	apiRequestsTotal.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Inc()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}

	if resp.StatusCode >= 400 {
		return errFromStatus(op, resp.StatusCode, serverMessage(raw))
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return &NetworkError{Op: op, Err: err}
		}
	}
	return nil
}

// getJSON / postJSON - шорткаты для типовых вызовов
func (c *Client) getJSON(ctx context.Context, op, path string, out interface{}) error {
	return c.do(ctx, op, http.MethodGet, path, nil, "", out)
}

func (c *Client) postJSON(ctx context.Context, op, path string, in, out interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return c.do(ctx, op, http.MethodPost, path, bytes.NewReader(payload), "", out)
}

// serverMessage достает поле error из тела ответа сервера
func serverMessage(raw []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Error != "" {
		return body.Error
	}
	return body.Message
}
