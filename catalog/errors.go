package catalog

import (
	"fmt"
)

// TransportError means no HTTP response was obtained: DNS failure, refused
// connection, timeout or a cancelled context.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("catalog transport: GET %s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UpstreamError carries a non-2xx status returned by the catalog API.
type UpstreamError struct {
	Endpoint   string
	StatusCode int
	Status     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("catalog upstream: GET %s: %d %s", e.Endpoint, e.StatusCode, e.Status)
}

// DecodeError means the response body was not a JSON object.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("catalog decode: GET %s: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
