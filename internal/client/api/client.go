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

	"github.com/iudanet/vaultkeeper/internal/client/ledger"
	"github.com/iudanet/vaultkeeper/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с леджером.
// Ошибки оборачиваются в классы ledger.Err*:
// сеть и 5xx в ErrNetwork, 404 в ErrObjectNotFound, 401 в ErrNotConnected, прочие 4xx в ErrRejected.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

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

// BaseURL возвращает адрес леджера
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CreateSession подключает кошелек и получает токен сессии
func (c *Client) CreateSession(ctx context.Context, req api.SessionRequest) (*api.SessionResponse, error) {
	var resp api.SessionResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/session", "", req, &resp); err != nil {
		return nil, fmt.Errorf("session request failed: %w", err)
	}
	return &resp, nil
}

// SubmitTransaction отправляет подписанную транзакцию.
// Квитанция со статусом failure возвращается без ошибки.
func (c *Client) SubmitTransaction(ctx context.Context, token string, req api.TransactionRequest) (*api.TransactionResponse, error) {
	var resp api.TransactionResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/transactions", token, req, &resp); err != nil {
		return nil, fmt.Errorf("submit transaction failed: %w", err)
	}
	return &resp, nil
}

// GetObject читает объект по ID
func (c *Client) GetObject(ctx context.Context, id string) (*api.ObjectResponse, error) {
	var resp api.ObjectResponse
	path := "/api/v1/objects/" + url.PathEscape(id)
	if err := c.doRequest(ctx, http.MethodGet, path, "", nil, &resp); err != nil {
		return nil, fmt.Errorf("get object %s failed: %w", id, err)
	}
	return &resp, nil
}

// OwnedObjects читает объекты владельца по индексу. objectType может быть пустым.
func (c *Client) OwnedObjects(ctx context.Context, owner, objectType string) (*api.OwnedObjectsResponse, error) {
	var resp api.OwnedObjectsResponse
	path := "/api/v1/owners/" + url.PathEscape(owner) + "/objects"
	if objectType != "" {
		path += "?type=" + url.QueryEscape(objectType)
	}
	if err := c.doRequest(ctx, http.MethodGet, path, "", nil, &resp); err != nil {
		return nil, fmt.Errorf("owned objects request failed: %w", err)
	}
	return &resp, nil
}

// VaultSummary вызывает get_vault_summary
func (c *Client) VaultSummary(ctx context.Context, vaultID string) (*api.SummaryResponse, error) {
	var resp api.SummaryResponse
	path := "/api/v1/vaults/" + url.PathEscape(vaultID) + "/summary"
	if err := c.doRequest(ctx, http.MethodGet, path, "", nil, &resp); err != nil {
		return nil, fmt.Errorf("vault summary request failed: %w", err)
	}
	return &resp, nil
}

// VaultFortune вызывает generate_vault_fortune
func (c *Client) VaultFortune(ctx context.Context, vaultID string) (*api.FortuneResponse, error) {
	var resp api.FortuneResponse
	path := "/api/v1/vaults/" + url.PathEscape(vaultID) + "/fortune"
	if err := c.doRequest(ctx, http.MethodGet, path, "", nil, &resp); err != nil {
		return nil, fmt.Errorf("vault fortune request failed: %w", err)
	}
	return &resp, nil
}

// Health проверяет доступность леджера
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Отмена контекста не сетевой сбой, оставляем ее как есть
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("request cancelled: %w", err)
		}
		return fmt.Errorf("%w: %w", ledger.ErrNetwork, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %w", ledger.ErrNetwork, err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, respBody)
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("%w: failed to decode response: %w", ledger.ErrNetwork, err)
		}
	}

	return nil
}

// statusError приводит код ответа к классу ошибки леджера
func statusError(status int, body []byte) error {
	class := ledger.ErrRejected
	switch {
	case status == http.StatusNotFound:
		class = ledger.ErrObjectNotFound
	case status == http.StatusUnauthorized:
		class = ledger.ErrNotConnected
	case status == http.StatusTooManyRequests, status >= 500:
		class = ledger.ErrNetwork
	}

	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && (errResp.Message != "" || errResp.Error != "") {
		msg := errResp.Message
		if msg == "" {
			msg = errResp.Error
		}
		return fmt.Errorf("%w: server error (%d): %s", class, status, msg)
	}
	return fmt.Errorf("%w: request failed with status %d: %s", class, status, string(body))
}
