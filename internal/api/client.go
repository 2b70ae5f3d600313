package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"vandar/client/internal/config"
	"vandar/client/internal/credentials"
)

const maxResponseBytes = 1 << 20

type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	log        zerolog.Logger
}

func NewClient(cfg *config.AppConfig, creds *credentials.Store, logger zerolog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.API.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.API.Timeout,
			Transport: newTransport(http.DefaultTransport, creds, logger),
		},
		baseURL: base,
		log:     logger,
	}, nil
}

// do runs one JSON request against the API. A non-2xx response or a
// transport failure comes back as *Error carrying the server message when
// there is one, else fallback.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, fallback string) error {
	// path may contain escaped segments; keep them intact by building the
	// URL textually instead of through url.URL.Path.
	u := c.baseURL.String() + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(withUnauthorizedGuard(ctx), method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Message: fallback, cause: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &Error{StatusCode: resp.StatusCode, Message: fallback, cause: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newError(resp.StatusCode, data, fallback)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
	}
	return nil
}
