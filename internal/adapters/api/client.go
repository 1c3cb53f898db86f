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
	"strings"
	"time"

	"github.com/ObaroAwowede/Shopify-frontend/internal/domain"
	"github.com/ObaroAwowede/Shopify-frontend/internal/ports"
	"github.com/rs/zerolog"
)

const maxResponseBytes = 1 << 20

// Client is the single HTTP entry point. It attaches the stored access
// token as a bearer credential to every authenticated request and routes
// everything through one configurable base URL.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	credentials ports.CredentialStore
	logger      zerolog.Logger
	timeout     time.Duration

	// refresher, when set, is invoked once after a 401 so the failed
	// request can be replayed with a fresh access token.
	refresher func(ctx context.Context) error
}

type Config struct {
	BaseURL     string
	HTTPClient  *http.Client
	Credentials ports.CredentialStore
	Logger      zerolog.Logger
	// Timeout bounds each request; zero leaves the transport default.
	Timeout time.Duration
}

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("api base url is empty")
	}
	if cfg.Credentials == nil {
		return nil, errors.New("credential store is nil")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:  httpClient,
		credentials: cfg.Credentials,
		logger:      cfg.Logger,
		timeout:     cfg.Timeout,
	}, nil
}

// SetRefresher wires the session's refresh operation into the 401
// retry path. Wiring happens after construction because the session
// itself depends on this client.
func (c *Client) SetRefresher(refresher func(ctx context.Context) error) {
	c.refresher = refresher
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any
	// authed requests carry the bearer token; registration and token
	// acquisition are the only exceptions.
	authed bool
}

func (c *Client) do(ctx context.Context, req request, out any) error {
	err := c.doOnce(ctx, req, out)
	if err == nil || c.refresher == nil || !req.authed || !errors.Is(err, domain.ErrAuthExpired) {
		return err
	}

	if refreshErr := c.refresher(ctx); refreshErr != nil {
		c.logger.Debug().Err(refreshErr).Msg("token refresh after 401 failed")
		return err
	}

	return c.doOnce(ctx, req, out)
}

func (c *Client) doOnce(ctx context.Context, req request, out any) error {
	endpoint := c.baseURL + req.path
	if len(req.query) > 0 {
		endpoint += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(requestCtx, req.method, endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")

	if req.authed {
		cred, err := c.credentials.Get(ctx)
		if err != nil {
			return fmt.Errorf("load credential: %w", err)
		}
		if !cred.IsZero() {
			httpReq.Header.Set("Authorization", "Bearer "+cred.AccessToken)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Debug().Str("method", req.method).Str("path", req.path).Err(err).Msg("api request failed")
		return fmt.Errorf("%s %s: %w", req.method, req.path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug().
		Str("method", req.method).
		Str("path", req.path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("api request")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return statusError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", req.method, req.path, err)
	}

	return nil
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

type errorResponse struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func statusError(resp *http.Response) error {
	var payload errorResponse
	_ = json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload)

	detail := payload.Detail
	if detail == "" {
		detail = payload.Message
	}
	if detail == "" {
		detail = payload.Error
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if detail != "" {
			return fmt.Errorf("%s: %w", detail, domain.ErrAuthExpired)
		}
		return domain.ErrAuthExpired
	case http.StatusNotFound:
		if detail != "" {
			return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)
		}
		return domain.ErrNotFound
	default:
		return &domain.RequestError{StatusCode: resp.StatusCode, Detail: detail}
	}
}
