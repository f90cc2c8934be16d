package client

import "fmt"

// APIError is returned when the service was reachable but rejected the
// request. Message carries the server-provided message verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// ConnectivityError is returned when the request could not reach the
// service at all. Endpoint names the configured base URL so the failure is
// actionable.
type ConnectivityError struct {
	Endpoint string
	Err      error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("unable to connect to backend at %s: ensure the server is running", e.Endpoint)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}
