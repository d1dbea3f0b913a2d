package spoonacular

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// FetchError is returned when a call to the recipe API does not produce a
// successful response: a non-2xx status, a timeout or a transport failure.
type FetchError struct {
	// Resource names what was being fetched ("recipes" or "recipe").
	Resource   string
	StatusCode int
	StatusText string
	Err        error
	timeout    bool
}

// Error returns the error message.
func (e *FetchError) Error() string {
	switch {
	case e.timeout:
		return fmt.Sprintf("failed to fetch %s: request timed out", e.Resource)
	case e.StatusCode == 0 && e.Err != nil:
		return fmt.Sprintf("failed to fetch %s: %v", e.Resource, e.Err)
	default:
		return fmt.Sprintf("failed to fetch %s: %d %s", e.Resource, e.StatusCode, e.StatusText)
	}
}

// Unwrap returns the underlying transport error, if any.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the request hit the client timeout.
func (e *FetchError) Timeout() bool {
	return e.timeout
}

// NotFound reports whether the API answered 404.
func (e *FetchError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

func newStatusError(resource string, code int) *FetchError {
	return &FetchError{Resource: resource, StatusCode: code, StatusText: http.StatusText(code)}
}

func newTimeoutError(resource string, err error) *FetchError {
	return &FetchError{
		Resource:   resource,
		StatusCode: http.StatusGatewayTimeout,
		StatusText: http.StatusText(http.StatusGatewayTimeout),
		Err:        redact(err),
		timeout:    true,
	}
}

func newTransportError(resource string, err error) *FetchError {
	return &FetchError{Resource: resource, Err: redact(err)}
}

// redact drops the request URL, which carries the API key, from err.
func redact(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return ue.Err
	}
	return err
}

// AsFetchError unwraps err into a *FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
