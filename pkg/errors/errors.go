package errors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ExpectedResponseError is returned when a response status code differs from
// the one the caller asked for.
type ExpectedResponseError struct {
	Expected   int
	StatusCode int
	Body       string
}

func NewExpectedResponseError(expected, actual int, body string) *ExpectedResponseError {
	return &ExpectedResponseError{Expected: expected, StatusCode: actual, Body: body}
}

func (e *ExpectedResponseError) Error() string {
	return fmt.Sprintf("expected status code %d but received %d: %s", e.Expected, e.StatusCode, e.Body)
}

func IsExpectedResponseError(err error) bool {
	var e *ExpectedResponseError
	return errors.As(err, &e)
}

// HTTPStatusError is the error raised for a non-successful response. It is the
// only error the HTTP retry loop inspects.
type HTTPStatusError struct {
	Code   int
	Status string
	URL    string
}

func NewHTTPStatusError(code int, status, url string) *HTTPStatusError {
	return &HTTPStatusError{Code: code, Status: status, URL: url}
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("%s for url: %s", e.Status, e.URL)
}

func IsHTTPStatusError(err error) bool {
	var e *HTTPStatusError
	return errors.As(err, &e)
}

// ErrorObjectInRequest is returned when a JSON body carries a populated
// "error" object.
type ErrorObjectInRequest struct {
	Code    int
	Name    string
	Message string
}

func NewErrorObjectInRequest(code int, name, message string) *ErrorObjectInRequest {
	return &ErrorObjectInRequest{Code: code, Name: name, Message: message}
}

func (e *ErrorObjectInRequest) Error() string {
	return fmt.Sprintf("Response contained the following error: (%d) %s:  %s", e.Code, e.Name, e.Message)
}

func IsErrorObjectInRequest(err error) bool {
	var e *ErrorObjectInRequest
	return errors.As(err, &e)
}

// RemoteCommandOutputNotEmpty carries the raw output of a remote command whose
// error stream was not empty and did not match any accepted pattern.
type RemoteCommandOutputNotEmpty struct {
	HostID string
	Output string
}

func NewRemoteCommandOutputNotEmpty(hostID, output string) *RemoteCommandOutputNotEmpty {
	return &RemoteCommandOutputNotEmpty{HostID: hostID, Output: output}
}

func (e *RemoteCommandOutputNotEmpty) Error() string {
	return fmt.Sprintf("remote command on %s returned output: %s", e.HostID, e.Output)
}

func IsRemoteCommandOutputNotEmpty(err error) bool {
	var e *RemoteCommandOutputNotEmpty
	return errors.As(err, &e)
}

// CommandTimeoutError is returned when polling exceeds the run-time budget.
type CommandTimeoutError struct {
	InvocationID string
	Budget       time.Duration
	Pending      []string
}

func NewCommandTimeoutError(invocationID string, budget time.Duration, pending []string) *CommandTimeoutError {
	return &CommandTimeoutError{InvocationID: invocationID, Budget: budget, Pending: pending}
}

func (e *CommandTimeoutError) Error() string {
	return fmt.Sprintf("command %s did not complete within %s on hosts [%s]", e.InvocationID, e.Budget, strings.Join(e.Pending, ", "))
}

func IsCommandTimeoutError(err error) bool {
	var e *CommandTimeoutError
	return errors.As(err, &e)
}

// ClientError marks a failure caused by the caller's request. It is never retried.
type ClientError struct {
	Code    string
	Message string
	Err     error
}

func NewClientError(code, message string, err error) *ClientError {
	return &ClientError{Code: code, Message: message, Err: err}
}

func (e *ClientError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("client error: %s", e.Message)
	}
	return fmt.Sprintf("client error %s: %s", e.Code, e.Message)
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

func IsClientError(err error) bool {
	var e *ClientError
	return errors.As(err, &e)
}

// ValidationError is returned when arguments or configuration are invalid.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

type FeedMissingError struct {
	Feed string
}

func NewFeedMissingError(feed string) *FeedMissingError {
	return &FeedMissingError{Feed: feed}
}

func (e *FeedMissingError) Error() string {
	return fmt.Sprintf("required feed %q is missing", e.Feed)
}

func IsFeedMissingError(err error) bool {
	var e *FeedMissingError
	return errors.As(err, &e)
}

type ResourceNotFoundError struct {
	Kind string
	ID   string
}

func NewResourceNotFoundError(kind, id string) *ResourceNotFoundError {
	return &ResourceNotFoundError{Kind: kind, ID: id}
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}

// ProcessError is raised when a process exit code maps to a known failure.
type ProcessError struct {
	Caller string
	Code   int
	Name   string
	Detail string
}

func NewProcessError(caller string, code int, name, detail string) *ProcessError {
	return &ProcessError{Caller: caller, Code: code, Name: name, Detail: detail}
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("%s failed with code %d (%s): %s", e.Caller, e.Code, e.Name, e.Detail)
}

func IsProcessError(err error) bool {
	var e *ProcessError
	return errors.As(err, &e)
}
