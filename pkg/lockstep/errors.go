package lockstep

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/fivetwenty-io/lockstep-client/internal/constants"
)

// ErrorResult is the error payload the Platform returns for a failed call.
// A failed Response always carries one, decoded from the body or synthesized
// from the status code when the body is not a usable error document.
type ErrorResult struct {
	Type    string              `json:"type,omitempty"    yaml:"type,omitempty"`
	Title   string              `json:"title,omitempty"   yaml:"title,omitempty"`
	Status  int                 `json:"status,omitempty"  yaml:"status,omitempty"`
	Detail  string              `json:"detail,omitempty"  yaml:"detail,omitempty"`
	TraceID string              `json:"traceId,omitempty" yaml:"traceId,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"  yaml:"errors,omitempty"`

	// Synthetic is set when the body could not be decoded as an error document.
	Synthetic bool `json:"-" yaml:"-"`
	// RawBody is the undecodable body, kept for synthetic results.
	RawBody string `json:"-" yaml:"-"`
}

// SyntheticErrorResult builds the fallback payload for a failed response
// whose body is empty or is not a JSON error document.
func SyntheticErrorResult(status int, body []byte) *ErrorResult {
	title := http.StatusText(status)
	if title == "" {
		title = fmt.Sprintf("HTTP %d", status)
	}

	return &ErrorResult{
		Title:     title,
		Status:    status,
		Synthetic: true,
		RawBody:   string(body),
	}
}

// Error implements the error interface.
func (e *ErrorResult) Error() string {
	var b strings.Builder

	title := e.Title
	if title == "" {
		title = "API error"
	}

	fmt.Fprintf(&b, "%s (status: %d)", title, e.Status)

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if len(e.Errors) > 0 {
		fields := make([]string, 0, len(e.Errors))
		for field := range e.Errors {
			fields = append(fields, field)
		}

		sort.Strings(fields)

		for _, field := range fields {
			fmt.Fprintf(&b, "; %s: %s", field, strings.Join(e.Errors[field], ", "))
		}
	}

	return b.String()
}

// IsNotFound reports whether the payload describes a 404.
func (e *ErrorResult) IsNotFound() bool {
	return e != nil && e.Status == http.StatusNotFound
}

// IsUnauthorized reports whether the payload describes a 401 or 403.
func (e *ErrorResult) IsUnauthorized() bool {
	return e != nil && (e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden)
}

// IsValidation reports whether the payload describes a rejected request body
// or parameter set.
func (e *ErrorResult) IsValidation() bool {
	return e != nil && (e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity)
}

// ParseErrorResult decodes a failed response body. It never fails: anything
// that is not a JSON object yields a synthetic result carrying status and body.
func ParseErrorResult(status int, body []byte) *ErrorResult {
	trimmed := strings.TrimSpace(string(body))
	if !strings.HasPrefix(trimmed, "{") {
		return SyntheticErrorResult(status, body)
	}

	var result ErrorResult

	err := json.Unmarshal(body, &result)
	if err != nil {
		return SyntheticErrorResult(status, body)
	}

	if result.Status == 0 {
		result.Status = status
	}

	if result.Title == "" {
		result.Title = http.StatusText(status)
	}

	return &result
}

// TransportError reports that no HTTP response was obtained.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error on %s %s: %v", e.Method, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a successful response whose body does not match the
// expected payload shape.
type DecodeError struct {
	StatusCode int
	Target     string
	Body       string
	Err        error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s from status %d response: %v", e.Target, e.StatusCode, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsTransportError reports whether err wraps a TransportError.
func IsTransportError(err error) bool {
	var target *TransportError

	return errors.As(err, &target)
}

// IsDecodeError reports whether err wraps a DecodeError.
func IsDecodeError(err error) bool {
	var target *DecodeError

	return errors.As(err, &target)
}

// Static errors callers can match with errors.Is.
var (
	ErrInvalidRequest       = constants.ErrInvalidRequest
	ErrMissingPathParameter = constants.ErrMissingPathParameter
	ErrUndeclaredParameter  = constants.ErrUndeclaredParameter
	ErrResponseTooLarge     = constants.ErrResponseTooLarge
	ErrNoCredentials        = constants.ErrNoCredentials
	ErrAmbiguousCredentials = constants.ErrAmbiguousCredentials
	ErrUnknownEnvironment   = constants.ErrUnknownEnvironment
	ErrInvalidConfig        = constants.ErrInvalidConfig
	ErrTokenExpired         = constants.ErrTokenExpired

	ErrEmptyBody              = constants.ErrEmptyBody
	ErrNullBody               = constants.ErrNullBody
	ErrNotJSONObject          = constants.ErrNotJSONObject
	ErrRequiredField          = constants.ErrRequiredField
	ErrMissingPageMetadata    = constants.ErrMissingPageMetadata
	ErrPageInvariantViolation = constants.ErrPageInvariantViolation
)

func snippet(body []byte) string {
	if len(body) <= constants.ErrorBodySnippetLen {
		return string(body)
	}

	return string(body[:constants.ErrorBodySnippetLen]) + "..."
}
