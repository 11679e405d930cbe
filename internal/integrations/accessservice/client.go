package accessservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client клиент сервиса доступа: роли пользователей и их ассистенты
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса доступа
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetRole получает роль пользователя
// Неизвестный пользователь получает пустую роль без прав
func (c *Client) GetRole(ctx context.Context, userID string) (*Role, error) {
	endpoint := fmt.Sprintf("%s/internal/users/%s/role", c.baseURL, url.PathEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		c.log.Warn("GetRole: role not found for user_id=%s", userID)
		return &Role{}, nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var role Role
	if err := json.NewDecoder(resp.Body).Decode(&role); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &role, nil
}

// IsAdmin проверяет, является ли пользователь администратором
func (c *Client) IsAdmin(ctx context.Context, userID string) (bool, error) {
	role, err := c.GetRole(ctx, userID)
	if err != nil {
		c.log.Error("IsAdmin: failed to get role for user_id=%s: %v", userID, err)
		return false, err
	}
	return role.Admin, nil
}

// IsUserForAssistant проверяет, может ли пользователь бронировать за ассистента
func (c *Client) IsUserForAssistant(ctx context.Context, userID, assistantID string) (bool, error) {
	role, err := c.GetRole(ctx, userID)
	if err != nil {
		c.log.Error("IsUserForAssistant: failed to get role for user_id=%s: %v", userID, err)
		return false, err
	}

	for _, id := range role.UserForAssistants {
		if id == assistantID {
			return true, nil
		}
	}
	return false, nil
}
