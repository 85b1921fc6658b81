package lockstep

import (
	"encoding/json"
	"net/http"
)

// Response is the result of a JSON endpoint call. It holds either the decoded
// value of a 2xx response or the error payload of any other status, never both.
//
// A Response is built once per call and not modified afterwards.
type Response[T any] struct {
	success    bool
	statusCode int
	value      T
	err        *ErrorResult
}

// Succeeded builds a successful Response.
func Succeeded[T any](statusCode int, value T) *Response[T] {
	return &Response[T]{success: true, statusCode: statusCode, value: value}
}

// Failed builds a failed Response. A nil payload is replaced with a synthetic one.
func Failed[T any](statusCode int, errResult *ErrorResult) *Response[T] {
	if errResult == nil {
		errResult = SyntheticErrorResult(statusCode, nil)
	}

	return &Response[T]{statusCode: statusCode, err: errResult}
}

// IsSuccessStatus reports whether code is in [200,300).
func IsSuccessStatus(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}

// OK reports whether the call succeeded.
func (r *Response[T]) OK() bool {
	return r.success
}

// StatusCode returns the HTTP status of the response.
func (r *Response[T]) StatusCode() int {
	return r.statusCode
}

// Value returns the decoded payload and true on success.
func (r *Response[T]) Value() (T, bool) {
	if !r.success {
		var zero T

		return zero, false
	}

	return r.value, true
}

// Err returns the error payload, or nil on success.
func (r *Response[T]) Err() *ErrorResult {
	return r.err
}

// Unwrap returns the value, or the error payload as an error.
func (r *Response[T]) Unwrap() (T, error) {
	if !r.success {
		var zero T

		return zero, r.err
	}

	return r.value, nil
}

// MarshalJSON encodes the envelope with whichever of value and error is present.
func (r *Response[T]) MarshalJSON() ([]byte, error) {
	if r.success {
		return json.Marshal(struct {
			Success    bool `json:"success"`
			StatusCode int  `json:"statusCode"`
			Value      T    `json:"value"`
		}{true, r.statusCode, r.value})
	}

	return json.Marshal(struct {
		Success    bool         `json:"success"`
		StatusCode int          `json:"statusCode"`
		Error      *ErrorResult `json:"error"`
	}{false, r.statusCode, r.err})
}
