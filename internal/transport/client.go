// Package transport wraps HTTP access to the Zen Healing backend. Every call
// either returns the raw response body or a normalized *Error; callers never
// see resty or net/http error types.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"zenhealing/internal/storage"
)

// TokenSource supplies the bearer credential attached to outgoing requests.
// A missing token is reported as storage.ErrNotFound and is not an error here:
// most endpoints are public.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Config holds transport settings for the active environment.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Verbose bool
}

type Client struct {
	http    *resty.Client
	tokens  TokenSource
	logger  *slog.Logger
	verbose bool
}

func New(cfg Config, tokens TokenSource, logger *slog.Logger) *Client {
	hc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	c := &Client{
		http:    hc,
		tokens:  tokens,
		logger:  logger.With("component", "transport"),
		verbose: cfg.Verbose,
	}

	hc.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-Id", uuid.NewString())

		if c.tokens != nil {
			token, err := c.tokens.Token(req.Context())
			switch {
			case err == nil && token != "":
				req.SetAuthToken(token)
			case err != nil && !errors.Is(err, storage.ErrNotFound):
				c.logger.Warn("failed to read auth token", "error", err)
			}
		}

		if c.verbose {
			c.logger.Debug("request",
				"method", req.Method,
				"url", req.URL,
				"request_id", req.Header.Get("X-Request-Id"),
			)
		}
		return nil
	})

	hc.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if c.verbose {
			c.logger.Debug("response",
				"method", resp.Request.Method,
				"url", resp.Request.URL,
				"status", resp.StatusCode(),
				"duration", resp.Time(),
			)
		}
		return nil
	})

	return c
}

func (c *Client) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	return c.execute(req, http.MethodGet, path)
}

func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	return c.execute(req, http.MethodPost, path)
}

func (c *Client) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	return c.execute(req, http.MethodPut, path)
}

func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.execute(c.http.R().SetContext(ctx), http.MethodDelete, path)
}

// Upload sends a multipart form with a single file field plus optional extra
// form fields.
func (c *Client) Upload(ctx context.Context, path, field, filename string, content io.Reader, fields map[string]string) (json.RawMessage, error) {
	req := c.http.R().
		SetContext(ctx).
		SetFileReader(field, filename, content)
	if len(fields) > 0 {
		req.SetFormData(fields)
	}
	return c.execute(req, http.MethodPost, path)
}

func (c *Client) execute(req *resty.Request, method, path string) (json.RawMessage, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		nerr := connectionError(err)
		c.logger.Warn("request failed",
			"method", method,
			"path", path,
			"kind", nerr.Kind,
			"error", err,
		)
		return nil, nerr
	}

	if resp.IsError() {
		nerr := statusError(resp.StatusCode(), resp.Body())
		c.logger.Warn("request rejected",
			"method", method,
			"path", path,
			"status", resp.StatusCode(),
			"kind", nerr.Kind,
		)
		return nil, nerr
	}

	body := make(json.RawMessage, len(resp.Body()))
	copy(body, resp.Body())
	return body, nil
}

// connectionError classifies a failure with no HTTP response: a timeout if the
// error says so, a network error otherwise.
func connectionError(err error) *Error {
	var ne net.Error
	if (errors.As(err, &ne) && ne.Timeout()) ||
		errors.Is(err, context.DeadlineExceeded) ||
		strings.Contains(err.Error(), "timeout") {
		return &Error{Message: msgTimeout, Kind: KindTimeout}
	}
	return &Error{Message: msgNetwork, Kind: KindNetwork}
}
