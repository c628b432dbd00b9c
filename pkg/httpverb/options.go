package httpverb

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"

	srvErrors "github.com/syslinkats/ats-harness/pkg/errors"
)

// ResponseHandler replaces the built-in response validation for a call.
type ResponseHandler func(resp *Response) error

type basicAuth struct {
	username string
	password string
}

type callConfig struct {
	expectedStatus  *int
	expectedSuccess *bool
	checkJSONError  bool
	handler         ResponseHandler
	retryCodes      []int
	retryCount      int
	headers         http.Header
	auth            *basicAuth
	noAuth          bool
}

type CallOption func(*callConfig)

// ExpectStatus fails the call with ExpectedResponseError unless the response
// carries exactly this status code.
func ExpectStatus(code int) CallOption {
	return func(c *callConfig) {
		c.expectedStatus = &code
	}
}

// ExpectSuccess fails the call with HTTPStatusError when the response's 2xx
// state differs from want.
func ExpectSuccess(want bool) CallOption {
	return func(c *callConfig) {
		c.expectedSuccess = &want
	}
}

// CheckJSONErrorKey fails the call when the JSON body has a populated
// "error" object.
func CheckJSONErrorKey() CallOption {
	return func(c *callConfig) {
		c.checkJSONError = true
	}
}

func WithCustomHandler(h ResponseHandler) CallOption {
	return func(c *callConfig) {
		c.handler = h
	}
}

// RetryOn replaces the set of status codes that trigger a retry.
func RetryOn(codes ...int) CallOption {
	return func(c *callConfig) {
		if len(codes) > 0 {
			c.retryCodes = codes
		}
	}
}

func RetryCount(n int) CallOption {
	return func(c *callConfig) {
		c.retryCount = n
	}
}

// WithHeaders replaces the client's headers for a single call.
func WithHeaders(h http.Header) CallOption {
	return func(c *callConfig) {
		c.headers = h
	}
}

func WithAuth(username, password string) CallOption {
	return func(c *callConfig) {
		c.auth = &basicAuth{username: username, password: password}
	}
}

func WithoutAuth() CallOption {
	return func(c *callConfig) {
		c.noAuth = true
	}
}

func newCallConfig(opts ...CallOption) *callConfig {
	c := &callConfig{
		retryCodes: defaultRetryCodes,
		retryCount: DefaultRetryCount,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.retryCount < 1 {
		c.retryCount = 1
	}
	return c
}

func (c *callConfig) check() error {
	if c.expectedStatus != nil && c.expectedSuccess != nil {
		return srvErrors.NewValidationError("validation", "expected status and expected success are mutually exclusive")
	}
	if c.handler != nil && (c.expectedStatus != nil || c.expectedSuccess != nil || c.checkJSONError) {
		return srvErrors.NewValidationError("validation", "a custom handler cannot be combined with built-in validation")
	}
	return nil
}

func (c *callConfig) validate(resp *Response) error {
	if c.handler != nil {
		return c.handler(resp)
	}

	switch {
	case c.expectedStatus != nil:
		if resp.StatusCode != *c.expectedStatus {
			return srvErrors.NewExpectedResponseError(*c.expectedStatus, resp.StatusCode, resp.Text())
		}
	case c.expectedSuccess != nil:
		if resp.OK() != *c.expectedSuccess {
			return srvErrors.NewHTTPStatusError(resp.StatusCode, resp.Status, resp.URL)
		}
	}

	if c.checkJSONError {
		return checkErrorObject(resp)
	}
	return nil
}

func (c *callConfig) retryable(err error) bool {
	var statusErr *srvErrors.HTTPStatusError
	if !errors.As(err, &statusErr) {
		return false
	}
	return slices.Contains(c.retryCodes, statusErr.Code)
}

type errorEnvelope struct {
	Error *struct {
		Code    *int    `json:"code"`
		Name    *string `json:"name"`
		Message *string `json:"message"`
	} `json:"error"`
}

func checkErrorObject(resp *Response) error {
	var env map[string]json.RawMessage
	if err := json.Unmarshal(resp.Body, &env); err != nil {
		return fmt.Errorf("failed to decode response body from %s: %w", resp.URL, err)
	}
	raw, ok := env["error"]
	if !ok || isEmptyJSON(raw) {
		return nil
	}

	var body errorEnvelope
	if err := json.Unmarshal(resp.Body, &body); err != nil || body.Error == nil {
		return srvErrors.NewErrorObjectInRequest(0, "Name not found.", string(raw))
	}

	code, name, message := 0, "Name not found.", "Message not found."
	if body.Error.Code != nil {
		code = *body.Error.Code
	}
	if body.Error.Name != nil {
		name = *body.Error.Name
	}
	if body.Error.Message != nil {
		message = *body.Error.Message
	}
	return srvErrors.NewErrorObjectInRequest(code, name, message)
}

func isEmptyJSON(raw json.RawMessage) bool {
	switch string(raw) {
	case "null", "{}", "[]", `""`, "false", "0":
		return true
	}
	return false
}
