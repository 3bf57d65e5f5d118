package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"sonic-miniapp/internal/config/configs"
)

// Client talks to the marketplace REST API. It owns a cookie jar so the
// session and CSRF cookies handed out by the backend survive across calls,
// and mirrors them into the X-CSRFToken header the backend requires on
// mutating requests.
type Client struct {
	hc     *http.Client
	base   *url.URL
	cfg    configs.API
	logger *slog.Logger
}

// NewClient builds a Client from config. The base URL must be absolute.
func NewClient(cfg configs.API, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if !base.IsAbs() {
		return nil, fmt.Errorf("base url %q is not absolute", cfg.BaseURL)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		hc:     &http.Client{Jar: jar, Timeout: cfg.Timeout},
		base:   base,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// formBody is a prepared multipart payload with its boundary content type.
type formBody struct {
	buf         *bytes.Buffer
	contentType string
}

// do performs one API request. body may be nil, a *formBody, or any
// JSON-encodable value. On 2xx the response body is decoded into out when
// the content type is JSON; a plain-text body is assigned when out is a
// *string; 204 leaves out untouched. Non-2xx responses become a
// *StatusError carrying the raw body, logged with the URL before return.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	ref, err := url.Parse(path)
	if err != nil {
		return fmt.Errorf("parse path %q: %w", path, err)
	}
	u := c.base.ResolveReference(ref)

	var reader io.Reader
	contentType := ""
	switch b := body.(type) {
	case nil:
	case *formBody:
		reader = b.buf
		contentType = b.contentType
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return fmt.Errorf("encode body: %w", err)
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.csrfToken(); token != "" {
		req.Header.Set("X-CSRFToken", token)
	}
	if c.cfg.AuthHeader != "" && c.cfg.AuthToken != "" {
		req.Header.Set(c.cfg.AuthHeader, c.cfg.AuthToken)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.hc.Do(req)
	if err != nil {
		c.logger.Error("api request failed", "url", u.String(), "err", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(resp.Body)
		serr := &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(data))}
		c.logger.Error("api request failed", "url", u.String(), "status", resp.StatusCode, "err", serr)
		return serr
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("api request failed", "url", u.String(), "err", err)
		return err
	}
	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(data, out); err != nil {
			c.logger.Error("api response decode failed", "url", u.String(), "err", err)
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}
	if s, ok := out.(*string); ok {
		*s = string(data)
	}
	return nil
}

// csrfToken reads the CSRF cookie for the base URL from the jar.
func (c *Client) csrfToken() string {
	for _, ck := range c.hc.Jar.Cookies(c.base) {
		if ck.Name == c.cfg.CSRFCookie {
			return ck.Value
		}
	}
	return ""
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
