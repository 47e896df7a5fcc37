// Package client is a typed HTTP client for the storefront API.
//
//	c, err := client.New("http://localhost:8080")
//	session, err := c.Login(ctx, "buyer@example.com", "secret")
//	orders, err := c.ListOrders(ctx)
//
// Login stores the session token; later calls send it as a bearer token.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const apiPrefix = "/api/v1"

type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

type Option func(*Client)

// WithHTTPClient replaces the default traced client with a 10s timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken sets a previously issued session token.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", baseURL)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Token returns the current session token, if any.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Login authenticates and keeps the issued token for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	var s Session
	status, err := c.do(ctx, http.MethodPost, "/login", loginRequest{Email: email, Password: password}, &s)
	if status == http.StatusUnauthorized {
		return Session{}, ErrCredentialsRejected
	}
	if err != nil {
		return Session{}, err
	}

	c.mu.Lock()
	c.token = s.Token
	c.mu.Unlock()
	return s, nil
}

// Register creates a buyer account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (User, error) {
	var u User
	status, err := c.do(ctx, http.MethodPost, "/register", req, &u)
	if status == http.StatusConflict {
		return User{}, ErrEmailTaken
	}
	return u, err
}

// AddToCart adds one unit of a product to the caller's cart.
func (c *Client) AddToCart(ctx context.Context, productID uuid.UUID) error {
	_, err := c.do(ctx, http.MethodPost, "/cart/items", addCartItemRequest{ProductID: productID}, nil)
	return err
}

// ListOrders returns every order for an admin and the caller's own orders for a buyer.
func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	_, err := c.do(ctx, http.MethodGet, "/orders", nil, &orders)
	return orders, err
}

// CreateOrder checks out the caller's cart. Totals are computed by the server.
func (c *Client) CreateOrder(ctx context.Context) (Order, error) {
	var o Order
	_, err := c.do(ctx, http.MethodPost, "/orders", nil, &o)
	return o, err
}

// UpdateOrderStatus sets an order's status. expectedVersion is the version
// the caller last read; a stale one yields ErrVersionConflict.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status string, expectedVersion int) (Order, error) {
	var o Order
	code, err := c.do(ctx, http.MethodPut, "/orders/"+orderID.String()+"/status",
		changeStatusRequest{Status: status, ExpectedVersion: expectedVersion}, &o)
	if code == http.StatusConflict {
		return Order{}, ErrVersionConflict
	}
	return o, err
}

// do sends a JSON request and decodes a 2xx body into out. The status code
// is returned alongside any error so callers can map it to a sentinel.
func (c *Client) do(ctx context.Context, method, path string, in, out any) (int, error) {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, body)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusBadGateway,
		resp.StatusCode == http.StatusServiceUnavailable,
		resp.StatusCode == http.StatusGatewayTimeout:
		return resp.StatusCode, fmt.Errorf("%w: status %d", ErrServiceUnavailable, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return resp.StatusCode, decodeAPIError(resp)
	}

	if out == nil {
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	return resp.StatusCode, nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return apiErr
	}
	var eb errorBody
	if json.Unmarshal(data, &eb) == nil && eb.Message != "" {
		apiErr.Message = eb.Message
	}
	return apiErr
}
