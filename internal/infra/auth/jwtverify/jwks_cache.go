package jwtverify

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"contesthub/internal/domain"
)

const (
	defaultJWKSCacheTTL = 5 * time.Minute
	defaultJWKSMaxStale = 15 * time.Minute
	defaultJWKSFetch    = 5 * time.Second
)

var errKeyNotFound = errors.New("jwks key not found")

type jwksCache struct {
	url        string
	httpClient *http.Client
	ttl        time.Duration
	maxStale   time.Duration
	now        func() time.Time

	mu         sync.RWMutex
	keys       map[string]*rsa.PublicKey
	expiresAt  time.Time
	staleUntil time.Time

	refreshMu sync.Mutex
	inflight  *refreshCall
}

// refreshCall is one shared JWKS fetch; err is set before done is closed.
type refreshCall struct {
	done chan struct{}
	err  error
}

type jwksResponse struct {
	Keys []jwkKey `json:"keys"`
}

type jwkKey struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	N   string `json:"n"`
	E   string `json:"e"`
}

func newJWKSCache(url string, httpClient *http.Client) *jwksCache {
	return &jwksCache{
		url:        url,
		httpClient: httpClient,
		ttl:        defaultJWKSCacheTTL,
		maxStale:   defaultJWKSMaxStale,
		now:        time.Now,
		keys:       map[string]*rsa.PublicKey{},
	}
}

// getKey serves cached keys while fresh, serves stale keys while a background refresh
// runs, and otherwise blocks on a single shared refresh.
func (c *jwksCache) getKey(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	if c == nil {
		return nil, errors.New("jwks not configured")
	}
	if kid == "" {
		return nil, errors.New("kid header required")
	}
	key, fresh, stale := c.lookup(kid)
	switch {
	case fresh:
		return key, nil
	case stale:
		go func() {
			_ = c.refresh(context.Background())
		}()
		return key, nil
	}
	if err := c.refresh(ctx); err != nil {
		return nil, err
	}
	if key, fresh, _ := c.lookup(kid); fresh {
		return key, nil
	}
	return nil, errKeyNotFound
}

func (c *jwksCache) lookup(kid string) (key *rsa.PublicKey, fresh, stale bool) {
	now := c.now()
	c.mu.RLock()
	defer c.mu.RUnlock()
	key, ok := c.keys[kid]
	if !ok {
		return nil, false, false
	}
	if now.Before(c.expiresAt) {
		return key, true, false
	}
	if now.Before(c.staleUntil) {
		return key, false, true
	}
	return nil, false, false
}

// refresh joins the in-flight fetch or starts one. The fetch is detached from every
// caller's cancellation; each caller waits only as long as its own ctx allows.
func (c *jwksCache) refresh(ctx context.Context) error {
	call, leader := c.beginRefresh()
	if leader {
		go c.runRefresh(context.WithoutCancel(ctx), call)
	}
	return c.waitRefresh(ctx, call)
}

func (c *jwksCache) beginRefresh() (*refreshCall, bool) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()
	if c.inflight != nil {
		return c.inflight, false
	}
	call := &refreshCall{done: make(chan struct{})}
	c.inflight = call
	return call, true
}

func (c *jwksCache) waitRefresh(ctx context.Context, call *refreshCall) error {
	select {
	case <-call.done:
		return call.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *jwksCache) runRefresh(ctx context.Context, call *refreshCall) {
	ctx, cancel := context.WithTimeout(ctx, defaultJWKSFetch)
	defer cancel()

	err := c.doRefresh(ctx)

	c.refreshMu.Lock()
	call.err = err
	close(call.done)
	c.inflight = nil
	c.refreshMu.Unlock()
}

func (c *jwksCache) doRefresh(ctx context.Context) error {
	keys, err := c.fetch(ctx)
	if err != nil {
		return err
	}
	now := c.now()
	c.mu.Lock()
	c.keys = keys
	c.expiresAt = now.Add(c.ttl)
	c.staleUntil = c.expiresAt.Add(c.maxStale)
	c.mu.Unlock()
	return nil
}

func (c *jwksCache) fetch(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch jwks: %w", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: jwks status %d", domain.ErrProviderUnavailable, resp.StatusCode)
	}
	var payload jwksResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode jwks: %w", domain.ErrProviderUnavailable, err)
	}
	keys := make(map[string]*rsa.PublicKey, len(payload.Keys))
	for _, key := range payload.Keys {
		if key.Kty != "RSA" || key.Kid == "" {
			continue
		}
		pub, err := rsaKeyFromJWK(key)
		if err != nil {
			continue
		}
		keys[key.Kid] = pub
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: jwks contains no usable keys", domain.ErrProviderUnavailable)
	}
	return keys, nil
}

func rsaKeyFromJWK(key jwkKey) (*rsa.PublicKey, error) {
	if key.N == "" || key.E == "" {
		return nil, errors.New("missing rsa params")
	}
	nBytes, err := base64.RawURLEncoding.DecodeString(key.N)
	if err != nil {
		return nil, err
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(key.E)
	if err != nil {
		return nil, err
	}
	e := new(big.Int).SetBytes(eBytes).Int64()
	if e <= 0 || e > int64(^uint32(0)) {
		return nil, errors.New("invalid rsa exponent")
	}
	return &rsa.PublicKey{N: new(big.Int).SetBytes(nBytes), E: int(e)}, nil
}
