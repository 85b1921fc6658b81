package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/lockstep-client/pkg/lockstep"
)

const testAPIKey = "test-api-key"

// NewTestClient starts server around handler and returns a client pointed at it.
func NewTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(context.Background(), &lockstep.Config{
		BaseURL: server.URL,
		APIKey:  testAPIKey,
	})
	require.NoError(t, err)

	return client
}

// WriteJSON writes body with the given status and a JSON content type.
func WriteJSON(t *testing.T, writer http.ResponseWriter, status int, body string) {
	t.Helper()

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)

	_, err := io.WriteString(writer, body)
	assert.NoError(t, err)
}

// TestOperation describes one resource client call against a stub server.
type TestOperation[T any] struct {
	Name           string
	ExpectedMethod string
	ExpectedPath   string
	ExpectedQuery  string
	ExpectedBody   string
	StatusCode     int
	Response       string
	Call           func(ctx context.Context, c *Client) (*lockstep.Response[T], error)
	Check          func(t *testing.T, value T)
}

// RunOperationTest checks the request the call sends and that a success
// response decodes into a value accepted by Check.
func RunOperationTest[T any](t *testing.T, op TestOperation[T]) {
	t.Helper()

	t.Run(op.Name, func(t *testing.T) {
		t.Parallel()

		client := NewTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, op.ExpectedMethod, request.Method)
			assert.Equal(t, op.ExpectedPath, request.URL.EscapedPath())
			assert.Equal(t, op.ExpectedQuery, request.URL.RawQuery)
			assert.Equal(t, testAPIKey, request.Header.Get("Api-Key"))

			body, err := io.ReadAll(request.Body)
			assert.NoError(t, err)

			if op.ExpectedBody != "" {
				assert.JSONEq(t, op.ExpectedBody, string(body))
			} else {
				assert.Empty(t, body)
			}

			status := op.StatusCode
			if status == 0 {
				status = http.StatusOK
			}

			WriteJSON(t, writer, status, op.Response)
		})

		resp, err := op.Call(context.Background(), client)
		require.NoError(t, err)
		require.True(t, resp.OK(), "unexpected error result: %v", resp.Err())

		value, ok := resp.Value()
		require.True(t, ok)

		if op.Check != nil {
			op.Check(t, value)
		}
	})
}

// MustJSON encodes v for use as an expected request body.
func MustJSON(t *testing.T, v any) string {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)

	return string(data)
}
