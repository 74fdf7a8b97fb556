package woocommerce

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"storefront/internal/config"
	"storefront/internal/logger"
	"storefront/internal/models"
)

const (
	headerTotalPages = "X-WP-TotalPages"
	headerTotalItems = "X-WP-Total"

	maxErrorBody = 64 << 10
)

var validate = validator.New()

// Client talks to the WooCommerce REST API (wp-json/wc/v3). It holds no
// mutable state and is safe for concurrent use.
type Client struct {
	baseURL        string
	consumerKey    string
	consumerSecret string
	httpClient     *http.Client
	transport      http.RoundTripper
	transformer    *Transformer
	logger         *logger.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTransport sets the round tripper for outbound requests. When combined
// with WithHTTPClient the given client is copied, never modified.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.transport = rt
	}
}

func NewClient(baseURL, consumerKey, consumerSecret string, logger *logger.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:        baseURL,
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		transformer: NewTransformer(),
		logger:      logger,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if c.transport != nil {
		hc := *c.httpClient
		hc.Transport = c.transport
		c.httpClient = &hc
	}
	return c
}

// NewClientFromConfig builds a client from the WORDPRESS_* settings.
func NewClientFromConfig(cfg *config.Config, logger *logger.Logger, opts ...Option) *Client {
	return NewClient(cfg.WordPressAPIURL, cfg.WordPressConsumerKey, cfg.WordPressConsumerSecret, logger, opts...)
}

type pagination struct {
	totalPages int
	totalItems int
}

func (c *Client) authHeaders() http.Header {
	h := http.Header{}
	if c.consumerKey != "" && c.consumerSecret != "" {
		credentials := base64.StdEncoding.EncodeToString([]byte(c.consumerKey + ":" + c.consumerSecret))
		h.Set("Authorization", "Basic "+credentials)
	}
	h.Set("Content-Type", "application/json")
	return h
}

// buildURL joins endpoint onto the base URL with exactly one slash and
// appends params in order.
func (c *Client) buildURL(endpoint string, params Params) (string, error) {
	base := c.baseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	u, err := url.Parse(base)
	if err != nil || !u.IsAbs() {
		return "", fmt.Errorf("invalid base URL %q", c.baseURL)
	}

	ref, err := url.Parse(strings.TrimPrefix(endpoint, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}

	u = u.ResolveReference(ref)
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}
	return u.String(), nil
}

func (c *Client) newRequest(ctx context.Context, endpoint string, params Params) (*http.Request, error) {
	target, err := c.buildURL(endpoint, params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header = c.authHeaders()
	return req, nil
}

// get performs one GET and fails on transport errors or non-2xx statuses.
// The caller owns the response body.
func (c *Client) get(ctx context.Context, endpoint string, params Params) (*http.Response, error) {
	req, err := c.newRequest(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("GET %s", req.URL.Redacted())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		resp.Body.Close()
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     statusText(resp),
			Path:       endpoint,
		}
	}
	return resp, nil
}

func (c *Client) fetch(ctx context.Context, endpoint string, params Params, target interface{}) error {
	resp, err := c.get(ctx, endpoint, params)
	if err != nil {
		c.logger.Error("WooCommerce API error: %v", err)
		return err
	}
	defer resp.Body.Close()

	if err := decode(endpoint, resp.Body, target); err != nil {
		c.logger.Error("WooCommerce API error: %v", err)
		return err
	}
	return nil
}

func (c *Client) fetchWithPagination(ctx context.Context, endpoint string, params Params, target interface{}) (pagination, error) {
	resp, err := c.get(ctx, endpoint, params)
	if err != nil {
		c.logger.Error("WooCommerce API error: %v", err)
		return pagination{}, err
	}
	defer resp.Body.Close()

	if err := decode(endpoint, resp.Body, target); err != nil {
		c.logger.Error("WooCommerce API error: %v", err)
		return pagination{}, err
	}

	return pagination{
		totalPages: headerInt(resp.Header, headerTotalPages, 1),
		totalItems: headerInt(resp.Header, headerTotalItems, 0),
	}, nil
}

// TestConnection probes the products endpoint. It never returns an error;
// failures are reported in the result.
func (c *Client) TestConnection(ctx context.Context) models.ProbeResult {
	req, err := c.newRequest(ctx, "products", Params{{Key: "per_page", Value: "1"}})
	if err != nil {
		return models.ProbeResult{Message: "Error de conectividad", Details: err.Error()}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.ProbeResult{Message: "Error de conectividad", Details: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return models.ProbeResult{Success: true, Message: "Conexión exitosa con WooCommerce API"}
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return models.ProbeResult{
		Message: fmt.Sprintf("Error %d: %s", resp.StatusCode, statusText(resp)),
		Details: string(body),
	}
}

func decode(endpoint string, body io.Reader, target interface{}) error {
	if err := json.NewDecoder(body).Decode(target); err != nil {
		return &DecodeError{Path: endpoint, Err: err}
	}
	if err := validatePayload(target); err != nil {
		return &DecodeError{Path: endpoint, Err: err}
	}
	return nil
}

func validatePayload(target interface{}) error {
	switch v := target.(type) {
	case *Product:
		return validate.Struct(v)
	case *[]Product:
		return validateEach(*v)
	case *[]Category:
		return validateEach(*v)
	case *[]Review:
		return validateEach(*v)
	}
	return nil
}

func validateEach[T any](records []T) error {
	for i := range records {
		if err := validate.Struct(&records[i]); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

func headerInt(h http.Header, key string, defaultValue int) int {
	if value := strings.TrimSpace(h.Get(key)); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
