package lockstep

import "net/http"

// RawResponse is what the dispatcher hands back for every HTTP response, and
// what binary endpoints such as invoice PDFs return directly.
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports whether the status is in [200,300).
func (r *RawResponse) OK() bool {
	return IsSuccessStatus(r.StatusCode)
}

// ContentType returns the Content-Type header.
func (r *RawResponse) ContentType() string {
	if r.Header == nil {
		return ""
	}

	return r.Header.Get("Content-Type")
}

// Err returns nil for a successful response and the decoded (or synthetic)
// error payload otherwise.
func (r *RawResponse) Err() *ErrorResult {
	if r.OK() {
		return nil
	}

	return ParseErrorResult(r.StatusCode, r.Body)
}
