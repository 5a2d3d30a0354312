// Package broker wraps the Tradier sandbox REST API. The client attaches
// credentials and timeouts but performs no interpretation of responses; the
// Normalizer turns raw HTTP outcomes into canonical order results.
package broker

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jptrading/proxytrader/pkg/errors"
)

const (
	// DefaultBaseURL points at the Tradier sandbox environment.
	DefaultBaseURL = "https://sandbox.tradier.com"

	// Order placement tolerates slower fills than the other endpoints.
	orderTimeout   = 15 * time.Second
	requestTimeout = 10 * time.Second
	quoteTimeout   = 5 * time.Second
)

// RawResponse is an uninterpreted HTTP outcome: status code and body exactly
// as the brokerage returned them.
type RawResponse struct {
	StatusCode int
	Body       []byte
}

// Client is the brokerage surface the trading pipeline depends on. A raw
// response is returned for any completed HTTP exchange; an error is returned
// only for network-level failure.
type Client interface {
	PlaceOrder(ctx context.Context, order FormEncodable) (RawResponse, error)
	GetOrders(ctx context.Context) (RawResponse, error)
	GetQuote(ctx context.Context, symbol string) (RawResponse, error)
	TestConnection(ctx context.Context) (RawResponse, error)
}

// FormEncodable renders an outbound payload as form-encoded fields.
type FormEncodable interface {
	FormData() map[string]string
}

// Config contains the credentials and endpoint for a TradierClient.
type Config struct {
	BaseURL   string `yaml:"base_url" json:"base_url"`
	Token     string `yaml:"token" json:"token" validate:"required"`
	AccountID string `yaml:"account_id" json:"account_id" validate:"required"`
}

// TradierClient is a stateless-per-call client for the Tradier REST API.
// The underlying HTTP connection pool is safe for concurrent reuse.
type TradierClient struct {
	http      *resty.Client
	accountID string
}

// NewTradierClient creates a client with the bearer credential and account
// identifier attached to every call.
func NewTradierClient(config Config) *TradierClient {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetAuthToken(config.Token)
	client.SetHeader("Accept", "application/json")

	return &TradierClient{
		http:      client,
		accountID: config.AccountID,
	}
}

// PlaceOrder submits a form-encoded order to the account order endpoint.
func (c *TradierClient) PlaceOrder(ctx context.Context, order FormEncodable) (RawResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, orderTimeout)
	defer cancel()

	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(order.FormData()).
		Post(fmt.Sprintf("/v1/accounts/%s/orders", c.accountID))
	if err != nil {
		return RawResponse{}, errors.Wrap(errors.ErrCodeTransport, "order placement request failed", err)
	}

	return RawResponse{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}

// GetOrders fetches the account's order history.
func (c *TradierClient) GetOrders(ctx context.Context) (RawResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/v1/accounts/%s/orders", c.accountID))
	if err != nil {
		return RawResponse{}, errors.Wrap(errors.ErrCodeTransport, "order listing request failed", err)
	}

	return RawResponse{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}

// GetQuote fetches a market quote for a single symbol.
func (c *TradierClient) GetQuote(ctx context.Context, symbol string) (RawResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, quoteTimeout)
	defer cancel()

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("symbols", symbol).
		Get("/v1/markets/quotes")
	if err != nil {
		return RawResponse{}, errors.Wrap(errors.ErrCodeTransport, "quote request failed", err)
	}

	return RawResponse{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}

// TestConnection probes the user profile endpoint to verify connectivity and
// authentication.
func (c *TradierClient) TestConnection(ctx context.Context) (RawResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.http.R().
		SetContext(ctx).
		Get("/v1/user/profile")
	if err != nil {
		return RawResponse{}, errors.Wrap(errors.ErrCodeTransport, "connection test failed", err)
	}

	return RawResponse{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}

// Ensure TradierClient implements Client.
var _ Client = (*TradierClient)(nil)
