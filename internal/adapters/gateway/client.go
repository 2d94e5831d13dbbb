package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/ports"
)

const (
	maxResponseBytes      = 1 << 20
	defaultRequestTimeout = 30 * time.Second
	DefaultBaseURL        = "http://localhost:8080"
)

// TokenSource supplies the bearer token attached to authenticated requests.
type TokenSource interface {
	Token() domain.Token
}

type TokenFunc func() domain.Token

func (f TokenFunc) Token() domain.Token {
	return f()
}

// Client talks to the API gateway. Every request except login and register
// carries the current bearer token; a 401 on such a request runs
// OnUnauthorized before the error is returned.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	Tokens         TokenSource
	OnUnauthorized func(ctx context.Context)
	Logger         *slog.Logger
}

var (
	_ ports.AuthClient           = (*Client)(nil)
	_ ports.ProfileClient        = (*Client)(nil)
	_ ports.ActivityClient       = ActivityAPI{}
	_ ports.RecommendationClient = RecommendationAPI{}
)

type request struct {
	method string
	path   string
	query  url.Values
	body   any
	// anonymous requests skip the bearer token and the unauthorized hook.
	anonymous bool
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) do(ctx context.Context, req request, out any) error {
	endpoint, err := buildAPIURL(c.BaseURL, req.path)
	if err != nil {
		return err
	}
	if len(req.query) > 0 {
		endpoint += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", req.method, req.path, err)
		}
		body = bytes.NewReader(encoded)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(requestCtx, req.method, endpoint, body)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", req.method, req.path, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if !req.anonymous && c.Tokens != nil {
		if token := c.Tokens.Token(); !token.Empty() {
			httpReq.Header.Set("Authorization", "Bearer "+string(token))
		}
	}

	started := time.Now()
	resp, err := c.httpClient().Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.method, req.path, &domain.NetworkError{Err: err})
	}
	defer resp.Body.Close()

	c.logger().Debug("gateway request", "method", req.method, "path", req.path, "status", resp.StatusCode, "elapsed", time.Since(started))

	if resp.StatusCode == http.StatusUnauthorized && !req.anonymous {
		message := decodeErrorMessage(resp)
		if c.OnUnauthorized != nil {
			c.OnUnauthorized(context.WithoutCancel(ctx))
		}
		return &domain.AuthError{Message: nonEmpty(message, "Unauthorized"), StatusCode: resp.StatusCode}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &domain.ServerError{StatusCode: resp.StatusCode, Message: decodeErrorMessage(resp)}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode %s %s response: %w", req.method, req.path, err)
	}
	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	return context.WithTimeout(ctx, requestTimeout)
}

// decodeErrorMessage accepts Spring's JSON error body or a plain-text body.
func decodeErrorMessage(resp *http.Response) string {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return ""
	}
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return ""
	}

	var payload errorResponse
	if err := json.Unmarshal(raw, &payload); err == nil {
		return nonEmpty(payload.Message, payload.Error)
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "<") {
		return ""
	}
	if len(trimmed) > 200 {
		trimmed = trimmed[:200]
	}
	return trimmed
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("gateway base url is required")
	}
	if path == "" {
		return "", errors.New("gateway path is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse gateway base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("gateway base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("gateway base url host is required")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse gateway path: %w", err)
	}
	return endpoint.String(), nil
}

func pageQuery(params domain.QueryParams, directionKey string) url.Values {
	query := url.Values{}
	query.Set("page", fmt.Sprint(params.Page))
	query.Set("size", fmt.Sprint(params.Size))
	query.Set("sortBy", params.SortBy)
	query.Set(directionKey, string(params.SortDirection))
	for key, value := range params.Filter.Normalize() {
		query.Set(key, value)
	}
	return query
}

func nonEmpty(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
