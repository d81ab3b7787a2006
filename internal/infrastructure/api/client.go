// Package api provides the authenticated REST client for the trend backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/podtrends/trenddeck/internal/domain/trend"
)

// TokenSource yields the current bearer token when a session exists.
type TokenSource interface {
	Get() (token string, ok bool)
}

// Client issues JSON requests against the backend, attaching the bearer
// credential on every call while a session exists.
type Client struct {
	baseURL string
	tokens  TokenSource
	httpc   *http.Client
}

// NewClient creates a client for the given base URL.
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithHTTP creates a client with a custom http.Client for tests.
func NewClientWithHTTP(baseURL string, tokens TokenSource, httpc *http.Client) *Client {
	c := NewClient(baseURL, tokens)
	if httpc != nil {
		c.httpc = httpc
	}
	return c
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Credentials is the auth request payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is the login response payload.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// IngestRequest carries optional overrides for an ingestion run.
type IngestRequest struct {
	URLs            []string `json:"urls,omitempty"`
	MaxItemsPerFeed int      `json:"max_items_per_feed,omitempty"`
	RunAI           bool     `json:"run_ai"`
}

// IngestResponse is the ingestion kickoff response payload.
type IngestResponse struct {
	TaskID string `json:"task_id"`
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, email, password string) error {
	return c.Do(ctx, http.MethodPost, "/api/v1/auth/register", Credentials{Email: email, Password: password}, nil, nil)
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out TokenResponse
	if err := c.Do(ctx, http.MethodPost, "/api/v1/auth/login", Credentials{Email: email, Password: password}, &out, nil); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

// ListItems fetches the current trend item set. limit <= 0 uses the backend default.
func (c *Client) ListItems(ctx context.Context, limit int) ([]trend.Item, error) {
	path := "/api/v1/trends/items"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var out []trend.Item
	if err := c.Do(ctx, http.MethodGet, path, nil, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

// GetItem fetches one trend item by id.
func (c *Client) GetItem(ctx context.Context, id int) (*trend.Item, error) {
	var out trend.Item
	if err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/trends/items/%d", id), nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// RunIngest queues an ingestion run and returns the server task id.
func (c *Client) RunIngest(ctx context.Context, urls []string, maxItemsPerFeed int, runAI bool) (string, error) {
	req := IngestRequest{URLs: urls, MaxItemsPerFeed: maxItemsPerFeed, RunAI: runAI}
	var out IngestResponse
	if err := c.Do(ctx, http.MethodPost, "/api/v1/trends/ingest", req, &out, nil); err != nil {
		return "", err
	}
	return out.TaskID, nil
}

// Do issues one request. Defaults (content type, cache suppression, bearer
// credential) are applied first so caller headers win on conflict.
func (c *Client) Do(ctx context.Context, method, path string, body, out any, headers http.Header) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	if token, ok := c.tokens.Get(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for name, values := range headers {
		req.Header.Del(name)
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Detail: err.Error(), cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		kind := KindHTTP
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			kind = KindAuth
		}
		return &Error{
			Kind:       kind,
			Status:     resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Detail:     readErrorDetail(resp.Body),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{
			Kind:       KindProtocol,
			Status:     resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Detail:     err.Error(),
			cause:      err,
		}
	}
	return nil
}

// readErrorDetail drains the body best-effort; a read failure reads as empty.
func readErrorDetail(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
