package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/streakbox/streakbox/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс HTTP клиента удалённого хранилища
type ClientAPI interface {
	// Register регистрирует нового пользователя
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)

	// GetSalt получает public_salt пользователя
	GetSalt(ctx context.Context, username string) (*api.SaltResponse, error)

	// Login выполняет аутентификацию пользователя
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)

	// Account возвращает идентичность аккаунта, которому принадлежит токен
	Account(ctx context.Context, accessToken string) (*api.AccountResponse, error)

	// Changes возвращает записи, изменившиеся после checkpoint.
	// Пустой checkpoint означает полную выдачу с начала истории.
	Changes(ctx context.Context, accessToken, checkpoint string) (*api.ChangesResponse, error)

	// PushResults отправляет батч локальных записей.
	// Исход каждой записи в батче независим.
	PushResults(ctx context.Context, accessToken string, req api.PushRequest) (*api.PushResponse, error)

	// DeleteResult помечает запись удалённой (tombstone)
	DeleteResult(ctx context.Context, accessToken, id string) error
}

// APIError представляет ошибку уровня протокола: сервер ответил,
// но отверг запрос. Транспортные сбои не оборачиваются в APIError.
type APIError struct {
	Code       string
	Message    string
	StatusCode int
	retryable  bool
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d %s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("server error (%d %s)", e.StatusCode, e.Code)
}

// Retryable сообщает, имеет ли смысл повторить запрос позже без
// изменений. Ошибки валидации и авторизации не ретраятся.
func (e *APIError) Retryable() bool {
	return e.retryable
}

// IsRetryable классифицирует ошибку вызова API: транспортные сбои
// (нет соединения, таймаут) всегда transient, протокольные — по
// флагу сервера либо по статус-коду.
func IsRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}
	// Не-APIError здесь — это транспортный сбой
	return true
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// GetSalt получает public_salt пользователя
func (c *Client) GetSalt(ctx context.Context, username string) (*api.SaltResponse, error) {
	var resp api.SaltResponse
	path := "/api/v1/auth/salt/" + url.PathEscape(username)
	err := c.doRequest(ctx, http.MethodGet, path, "", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get salt request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Account возвращает идентичность аккаунта по токену
func (c *Client) Account(ctx context.Context, accessToken string) (*api.AccountResponse, error) {
	var resp api.AccountResponse
	err := c.doRequest(ctx, http.MethodGet, "/api/v1/account", accessToken, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("account request failed: %w", err)
	}
	return &resp, nil
}

// Changes возвращает изменения после checkpoint
func (c *Client) Changes(ctx context.Context, accessToken, checkpoint string) (*api.ChangesResponse, error) {
	var resp api.ChangesResponse
	path := "/api/v1/sync/changes"
	if checkpoint != "" {
		path += "?checkpoint=" + url.QueryEscape(checkpoint)
	}
	err := c.doRequest(ctx, http.MethodGet, path, accessToken, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("changes request failed: %w", err)
	}
	return &resp, nil
}

// PushResults отправляет батч локальных записей
func (c *Client) PushResults(ctx context.Context, accessToken string, req api.PushRequest) (*api.PushResponse, error) {
	var resp api.PushResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/sync/push", accessToken, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("push request failed: %w", err)
	}
	return &resp, nil
}

// DeleteResult помечает запись удалённой на сервере
func (c *Client) DeleteResult(ctx context.Context, accessToken, id string) error {
	path := "/api/v1/results/" + url.PathEscape(id)
	err := c.doRequest(ctx, http.MethodDelete, path, accessToken, nil, nil)
	if err != nil {
		return fmt.Errorf("delete request failed: %w", err)
	}
	return nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path, accessToken string, body, result any) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, respBody)
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		retryable:  retryableStatus(statusCode),
	}

	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		apiErr.Code = errResp.Error
		apiErr.Message = errResp.Message
		// Явный флаг сервера важнее эвристики по статусу
		apiErr.retryable = errResp.Retryable
	} else if len(body) > 0 {
		apiErr.Message = string(body)
	}

	return apiErr
}

func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}
