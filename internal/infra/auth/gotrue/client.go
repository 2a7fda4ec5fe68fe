// Package gotrue verifies bearer credentials by asking the managed auth service who they
// belong to, the same call its client libraries make for getUser.
package gotrue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"contesthub/internal/config"
	"contesthub/internal/domain"
)

const userPath = "/auth/v1/user"

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

func NewClient(cfg config.Config, opts ...Option) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.SupabaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("SUPABASE_URL is required")
	}
	timeout := cfg.IdentityTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	c := &Client{
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.SupabaseAnonKey),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Verify distinguishes a rejected credential (ErrInvalidCredential) from a service fault
// (ErrProviderUnavailable).
func (c *Client) Verify(ctx context.Context, bearerToken string) (domain.Identity, error) {
	token := strings.TrimSpace(bearerToken)
	if token == "" {
		return domain.Identity{}, domain.ErrInvalidCredential
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+userPath, nil)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		_, _ = io.Copy(io.Discard, resp.Body)
		return domain.Identity{}, fmt.Errorf("%w: status %d", domain.ErrProviderUnavailable, resp.StatusCode)
	case resp.StatusCode == http.StatusTooManyRequests:
		return domain.Identity{}, fmt.Errorf("%w: throttled", domain.ErrProviderUnavailable)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return domain.Identity{}, fmt.Errorf("%w: status %d", domain.ErrInvalidCredential, resp.StatusCode)
	}

	var payload userResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.Identity{}, fmt.Errorf("%w: decode user: %w", domain.ErrProviderUnavailable, err)
	}
	if payload.ID == "" {
		return domain.Identity{}, fmt.Errorf("%w: empty user", domain.ErrInvalidCredential)
	}
	return domain.Identity{UserID: payload.ID, Email: payload.Email}, nil
}
