package httpverb

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
)

const (
	DefaultRetryCount = 60
	DefaultRetryDelay = 10 * time.Second
)

var defaultRetryCodes = []int{http.StatusServiceUnavailable}

// Client issues HTTP verbs against services that share one set of credentials.
//
// Certificate verification is disabled: every target runs behind a
// self-signed certificate. Do not point a Client at a host whose identity
// matters.
type Client struct {
	httpClient *http.Client
	username   string
	password   string
	headers    http.Header
	debug      bool
	retryDelay time.Duration
	retryCount int
}

type Option func(*Client)

func WithDebug(enabled bool) Option {
	return func(c *Client) {
		c.debug = enabled
	}
}

// WithRetryDelay overrides the fixed delay between retried requests.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) {
		c.retryDelay = d
	}
}

// WithRetryCount sets the attempts of calls that do not pass RetryCount.
func WithRetryCount(n int) Option {
	return func(c *Client) {
		c.retryCount = n
	}
}

func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

func NewClient(username, password string, opts ...Option) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	transport.RegisterProtocol("file", http.NewFileTransport(http.Dir("/")))

	c := &Client{
		httpClient: &http.Client{Transport: transport},
		username:   username,
		password:   password,
		headers:    http.Header{"Content-Type": []string{"application/json"}},
		retryDelay: DefaultRetryDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// payload builds a fresh request body for every attempt.
type payload func() (io.Reader, string, error)

func noBody() (io.Reader, string, error) {
	return nil, "", nil
}

func rawBody(data []byte) payload {
	return func() (io.Reader, string, error) {
		if data == nil {
			return nil, "", nil
		}
		return bytes.NewReader(data), "", nil
	}
}

func jsonBody(v any) payload {
	return func() (io.Reader, string, error) {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body: %w", err)
		}
		return bytes.NewReader(data), "application/json", nil
	}
}

// do runs one call through request, debug output, validation and retry.
func (c *Client) do(ctx context.Context, method, url string, body payload, opts []CallOption) (*Response, error) {
	if c.retryCount > 0 {
		opts = append([]CallOption{RetryCount(c.retryCount)}, opts...)
	}
	cfg := newCallConfig(opts...)
	if err := cfg.check(); err != nil {
		return nil, err
	}

	log := zap.S().Named("http_verb")
	remaining := cfg.retryCount

	operation := func() (*Response, error) {
		resp, err := c.send(ctx, method, url, body, cfg)
		if err != nil {
			return nil, backoff.Permanent(err)
		}

		if c.debug {
			debugLog(resp)
		}

		if err := cfg.validate(resp); err != nil {
			if cfg.retryable(err) {
				return nil, err
			}
			return nil, backoff.Permanent(err)
		}
		return resp, nil
	}

	resp, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewConstantBackOff(c.retryDelay)),
		backoff.WithMaxTries(uint(cfg.retryCount)),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, next time.Duration) {
			remaining--
			log.Warnw("request failed", "method", method, "url", url, "error", err, "retries_remaining", remaining, "next_attempt_in", next)
		}),
	)
	if err != nil {
		var permanent *backoff.PermanentError
		if errors.As(err, &permanent) {
			return nil, permanent.Unwrap()
		}
		return nil, err
	}
	return resp, nil
}

func (c *Client) send(ctx context.Context, method, url string, body payload, cfg *callConfig) (*Response, error) {
	reader, contentType, err := body()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request for %s: %w", method, url, err)
	}

	headers := c.headers
	if cfg.headers != nil {
		headers = cfg.headers
	}
	for k, v := range headers {
		req.Header[k] = append([]string(nil), v...)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	switch {
	case cfg.noAuth:
	case cfg.auth != nil:
		req.SetBasicAuth(cfg.auth.username, cfg.auth.password)
	case c.username != "":
		req.SetBasicAuth(c.username, c.password)
	}

	var requestBody []byte
	if req.GetBody != nil {
		if rc, err := req.GetBody(); err == nil {
			requestBody, _ = io.ReadAll(rc)
			rc.Close()
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s failed: %w", method, url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", url, err)
	}

	return &Response{
		StatusCode:  resp.StatusCode,
		Status:      resp.Status,
		Header:      resp.Header,
		Body:        data,
		Method:      method,
		URL:         url,
		RequestBody: requestBody,
	}, nil
}

func debugLog(resp *Response) {
	log := zap.S().Named("http_verb")

	log.Debugf("%s: %s", resp.Method, resp.URL)
	if len(resp.RequestBody) > 0 {
		log.Debugf("Body: %s", resp.RequestBody)
	}
	log.Debugf("Response: %s", resp.Status)

	var out bytes.Buffer
	if err := json.Indent(&out, resp.Body, "", "    "); err != nil {
		log.Debugf("Response text: %s", resp.Body)
		return
	}
	log.Debugf("Response text: %s", out.String())
}
