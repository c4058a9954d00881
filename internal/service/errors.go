package service

import (
	"errors"
	"fmt"
)

var ErrEmptyQuery = errors.New("query is empty")

// TransportError covers DNS, connect, timeout and body read failures.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// StatusError is a non-200 reply. Body is the raw response text.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string { return fmt.Sprintf("status %d: %s", e.Code, e.Body) }

// ResponseError is a 200 reply whose body does not have the expected shape.
// Field is empty when the body is not a JSON object at all.
type ResponseError struct {
	Field string
	Err   error
}

func (e *ResponseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("decode response: %v", e.Err)
	}
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

func (e *ResponseError) Unwrap() error { return e.Err }

var errMissing = errors.New("missing")

// Kind names the error class for logs and JSON replies.
func Kind(err error) string {
	var te *TransportError
	var se *StatusError
	var re *ResponseError
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrEmptyQuery):
		return "empty_query"
	case errors.As(err, &te):
		return "transport"
	case errors.As(err, &se):
		return "status"
	case errors.As(err, &re):
		return "response"
	default:
		return "internal"
	}
}
