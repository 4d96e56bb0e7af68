package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NetworkError means the request never got a response from the backend.
type NetworkError struct {
	Method string
	Path   string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: backend unreachable: %v", e.Method, e.Path, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPStatusError is a 4xx/5xx answer from the backend.
type HTTPStatusError struct {
	Method string
	Path   string
	Status int
	Body   []byte
}

func (e *HTTPStatusError) Error() string {
	if msg := e.Message(); msg != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Status, msg)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Status)
}

// Message returns the backend-provided message, if the body is a JSON object
// carrying "message" or "error".
func (e *HTTPStatusError) Message() string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(e.Body, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}

// DecodeError means the backend answered 2xx with a body of the wrong shape.
type DecodeError struct {
	Method string
	Path   string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s %s: decode response: %v", e.Method, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ValidationError is a failed precondition: a missing required field checked
// before any network call, a form rejected by its schema, or a payload the
// backend refused as invalid (Err then holds the *HTTPStatusError).
type ValidationError struct {
	Fields map[string]string
	Reason string
	Err    error
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// FromValidator converts go-playground validation failures, keyed by the json
// field name when the validator was set up to report it.
func FromValidator(reason string, err error) *ValidationError {
	ve := &ValidationError{Reason: reason, Err: err}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		ve.Fields = make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			ve.Fields[fe.Field()] = fe.Tag()
		}
	}
	return ve
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("validation failed")
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	if e.Err != nil && e.Fields == nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// UserMessage picks what a notification should show for err: the backend's own
// message when there is one, otherwise fallback.
func UserMessage(err error, fallback string) string {
	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		if msg := statusErr.Message(); msg != "" {
			return msg
		}
	}
	return fallback
}
