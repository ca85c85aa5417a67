package backend

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrBadHTTPStatus = errors.New("bad HTTP status received")
	ErrTokenEmpty    = errors.New("token is empty")
)

// ResponseError is returned when the backend answers
// with a non 2xx status code.
type ResponseError struct {
	StatusCode int
	// Message is the optional message field of the JSON error body.
	Message string
	// Body is the response body on a single line.
	Body string
}

func (e *ResponseError) Error() string {
	s := fmt.Sprintf("%s: %d %s", ErrBadHTTPStatus,
		e.StatusCode, http.StatusText(e.StatusCode))
	switch {
	case e.Message != "":
		s += ": " + e.Message
	case e.Body != "":
		s += " (" + e.Body + ")"
	}
	return s
}

func (e *ResponseError) Unwrap() error {
	return ErrBadHTTPStatus
}
