package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ServerError is a failure reported by the backend, either through a non-2xx
// status or a {success:false, error} payload. Message is the server's text,
// shown to the user verbatim.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if text := http.StatusText(e.StatusCode); text != "" {
		return text
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// Retryable reports whether the status is worth another attempt.
func (e *ServerError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// TransportError wraps a failure to reach the backend or read its reply.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Reason extracts the user-facing part of an error returned by Client.
func Reason(err error) string {
	var se *ServerError
	if errors.As(err, &se) {
		return se.Error()
	}
	var te *TransportError
	if errors.As(err, &te) {
		return te.Err.Error()
	}
	return err.Error()
}

func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var se *ServerError
	if errors.As(err, &se) {
		return se.Retryable()
	}
	var te *TransportError
	return errors.As(err, &te)
}
