// Package api is the typed gateway to the household backend. One method
// per (entity, verb) pair, each a single JSON round trip against the
// configured base URL. The client holds no state across calls and does
// no retrying, caching, or request coalescing; callers own retry policy
// and presentation.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"hearth/internal/log"
)

// Config configures a Client. BaseURL is required and injected by the
// hosting command; the client never sniffs its environment.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *log.Logger
}

// Client issues typed requests to the backend under {BaseURL}/api.
// Methods are safe for concurrent use; concurrent calls are independent
// round trips with no ordering guarantee between them.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
}

// New creates a Client from explicit configuration.
func New(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("api: base URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}

	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		logger:  logger.WithComponent(log.ComponentAPI),
	}, nil
}

// BaseURL returns the configured origin without the /api prefix.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs one round trip: JSON-encode in (when non-nil), call
// {baseURL}/api{endpoint}, and JSON-decode a 2xx body into out (when
// non-nil) with no further validation. Caller headers merge over the
// default Content-Type. Every failure comes back as *Error.
func (c *Client) do(ctx context.Context, method, endpoint string, header http.Header, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return &Error{Kind: KindTransport, Message: fmt.Sprintf("encode request: %v", err)}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api"+endpoint, body)
	if err != nil {
		return &Error{Kind: KindTransport, Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	for name, values := range header {
		req.Header.Del(name)
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}

	requestID := uuid.NewString()
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "Request failed",
			log.FieldRequestID, requestID,
			log.FieldMethod, method,
			log.FieldEndpoint, endpoint,
			log.FieldError, err.Error())
		return &Error{Kind: KindTransport, Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindTransport, Message: fmt.Sprintf("read response: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := errorMessage(resp.StatusCode, data)
		c.logger.WarnContext(ctx, "Request rejected",
			log.FieldRequestID, requestID,
			log.FieldMethod, method,
			log.FieldEndpoint, endpoint,
			log.FieldStatusCode, resp.StatusCode,
			log.FieldDuration, time.Since(start).Milliseconds())
		return &Error{Kind: KindApplication, Status: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &Error{Kind: KindTransport, Message: fmt.Sprintf("decode response: %v", err)}
		}
	}

	c.logger.DebugContext(ctx, "Request completed",
		log.FieldRequestID, requestID,
		log.FieldMethod, method,
		log.FieldEndpoint, endpoint,
		log.FieldStatusCode, resp.StatusCode,
		log.FieldDuration, time.Since(start).Milliseconds())

	return nil
}

// errorMessage picks the failure text for a non-2xx response, in
// preference order: the server's error field, the generic network text
// when the body is unparseable, the HTTP status line when the field is
// absent.
func errorMessage(status int, body []byte) string {
	var parsed struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return genericNetworkMessage
	}
	if parsed.Error != "" {
		return parsed.Error
	}
	return fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
}
