package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fivetwenty-io/lockstep-client/internal/auth"
	"github.com/fivetwenty-io/lockstep-client/internal/constants"
	lshttp "github.com/fivetwenty-io/lockstep-client/internal/http"
	"github.com/fivetwenty-io/lockstep-client/pkg/lockstep"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

func apiKey(t *testing.T) auth.Credentials {
	t.Helper()

	creds, err := auth.NewAPIKey("test-key")
	require.NoError(t, err)

	return creds
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()

	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v1/Invoices/abc", request.URL.Path)
			assert.Equal(t, http.MethodGet, request.Method)
			assert.Equal(t, "test-key", request.Header.Get("Api-Key"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Equal(t, "Go", request.Header.Get("SdkType"))
			assert.Equal(t, constants.SDKVersion, request.Header.Get("SdkVersion"))

			_, err := uuid.Parse(request.Header.Get("X-Request-Id"))
			assert.NoError(t, err)

			_ = json.NewEncoder(writer).Encode(map[string]string{"invoiceId": "abc"})
		}))
		defer server.Close()

		client := lshttp.NewClient(server.URL, apiKey(t))

		resp, err := client.Do(context.Background(), &lshttp.Request{
			Method: http.MethodGet,
			Path:   "/api/v1/Invoices/abc",
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		require.NoError(t, json.Unmarshal(resp.Body, &result))
		assert.Equal(t, "abc", result["invoiceId"])
	})

	t.Run("empty query values are omitted", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "pageSize=10", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := lshttp.NewClient(server.URL, nil)

		resp, err := client.Do(context.Background(), &lshttp.Request{
			Method: http.MethodGet,
			Path:   "/api/v1/Invoices/query",
			Query: url.Values{
				"filter":   []string{""},
				"include":  []string{},
				"pageSize": []string{"10"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodPost, request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body []map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "INV-1", body[0]["referenceCode"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := lshttp.NewClient(server.URL, nil)

		resp, err := client.Do(context.Background(), &lshttp.Request{
			Method: http.MethodPost,
			Path:   "/api/v1/Invoices",
			Body:   []map[string]string{{"referenceCode": "INV-1"}},
		})
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("error status is a response, not an error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"title":"Record not found","status":404}`))
		}))
		defer server.Close()

		client := lshttp.NewClient(server.URL, nil)

		resp, err := client.Get(context.Background(), "/api/v1/Invoices/missing", nil)
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
		assert.JSONEq(t, `{"title":"Record not found","status":404}`, string(resp.Body))
	})

	t.Run("server error is not retried by default", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := lshttp.NewClient(server.URL, nil)

		resp, err := client.Get(context.Background(), "/api/v1/Status", nil)
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
		assert.Empty(t, resp.Body)
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("custom headers and accept", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			assert.Equal(t, "application/pdf", request.Header.Get("Accept"))
			writer.Header().Set("Content-Type", "application/pdf")
			_, _ = writer.Write([]byte("%PDF-1.7"))
		}))
		defer server.Close()

		client := lshttp.NewClient(server.URL, nil)

		resp, err := client.Do(context.Background(), &lshttp.Request{
			Method:  http.MethodGet,
			Path:    "/api/v1/Invoices/abc/pdf",
			Accept:  "application/pdf",
			Headers: map[string]string{"X-Custom-Header": "custom-value"},
		})
		require.NoError(t, err)

		raw := resp.Raw()
		assert.True(t, raw.OK())
		assert.Equal(t, "application/pdf", raw.ContentType())
		assert.Equal(t, []byte("%PDF-1.7"), raw.Body)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := lshttp.NewClient(server.URL, nil, lshttp.WithLogger(logger), lshttp.WithDebug(true))

		query := url.Values{"filter": {"customerName eq 'Acme Corp'"}, "pageSize": {"10"}}
		_, err := client.Get(context.Background(), "/api/v1/Invoices/query", query)
		require.NoError(t, err)

		require.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])

		fields, ok := logger.logs[0]["fields"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "/api/v1/Invoices/query", fields["path"])
		assert.Equal(t, []string{"filter", "pageSize"}, fields["query_keys"])
		assert.NotContains(t, fields, "url")

		for _, value := range fields {
			assert.NotContains(t, fmt.Sprint(value), "Acme")
		}
	})
}

type countingTransport struct {
	calls atomic.Int32
}

func (c *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	c.calls.Add(1)

	return http.DefaultTransport.RoundTrip(req)
}

func TestClient_HTTPClientOption(t *testing.T) {
	t.Parallel()

	t.Run("caller's client is left untouched", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		transport := &countingTransport{}
		shared := &http.Client{Transport: transport}

		client := lshttp.NewClient(server.URL, nil, lshttp.WithHTTPClient(shared), lshttp.WithTimeout(5*time.Second))

		resp, err := client.Get(context.Background(), "/api/v1/Status", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		assert.Equal(t, time.Duration(0), shared.Timeout)
		assert.Same(t, transport, shared.Transport)
		assert.Equal(t, int32(1), transport.calls.Load())
	})

	t.Run("default timeout is not written back", func(t *testing.T) {
		t.Parallel()

		shared := &http.Client{}
		_ = lshttp.NewClient("https://api.sbx.lockstep.io", nil, lshttp.WithHTTPClient(shared))

		assert.Equal(t, time.Duration(0), shared.Timeout)
	})

	t.Run("explicit timeout overrides the caller's", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			select {
			case <-release:
			case <-request.Context().Done():
			}
		}))
		defer server.Close()
		defer close(release)

		shared := &http.Client{Timeout: time.Minute}
		client := lshttp.NewClient(server.URL, nil,
			lshttp.WithHTTPClient(shared), lshttp.WithTimeout(50*time.Millisecond))

		_, err := client.Get(context.Background(), "/slow", nil)
		require.Error(t, err)
		assert.True(t, lockstep.IsTransportError(err))
		assert.Equal(t, time.Minute, shared.Timeout)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*lshttp.Client, context.Context) (*lshttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *lshttp.Client, ctx context.Context) (*lshttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *lshttp.Client, ctx context.Context) (*lshttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PUT",
			method: "PUT",
			fn: func(c *lshttp.Client, ctx context.Context) (*lshttp.Response, error) {
				return c.Put(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PATCH",
			method: "PATCH",
			fn: func(c *lshttp.Client, ctx context.Context) (*lshttp.Response, error) {
				return c.Patch(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *lshttp.Client, ctx context.Context) (*lshttp.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := lshttp.NewClient(server.URL, nil)
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

func TestClient_TransportFailures(t *testing.T) {
	t.Parallel()

	t.Run("connection refused", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		baseURL := server.URL
		server.Close()

		logger := &MockLogger{}
		client := lshttp.NewClient(baseURL, nil, lshttp.WithLogger(logger))

		resp, err := client.Get(context.Background(), "/api/v1/Status", nil)
		require.Error(t, err)
		assert.Nil(t, resp)

		var transportErr *lockstep.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, "GET", transportErr.Method)
		assert.Equal(t, "/api/v1/Status", transportErr.Path)
		require.NotEmpty(t, logger.logs)
		assert.Equal(t, "HTTP Transport Error", logger.logs[len(logger.logs)-1]["msg"])
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := lshttp.NewClient(server.URL, nil)

		_, err := client.Get(ctx, "/api/v1/Status", nil)
		require.Error(t, err)
		assert.True(t, lockstep.IsTransportError(err))
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("oversized body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(strings.Repeat("x", 64)))
		}))
		defer server.Close()

		client := lshttp.NewClient(server.URL, nil, lshttp.WithMaxResponseBytes(16))

		_, err := client.Get(context.Background(), "/api/v1/Status", nil)
		require.Error(t, err)
		assert.True(t, lockstep.IsTransportError(err))
		assert.ErrorIs(t, err, constants.ErrResponseTooLarge)
	})

	t.Run("expired bearer token is refused locally", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			hits.Add(1)
		}))
		defer server.Close()

		client := lshttp.NewClient(server.URL, expiredCredentials{})

		_, err := client.Get(context.Background(), "/api/v1/Status", nil)
		require.ErrorIs(t, err, constants.ErrTokenExpired)
		assert.Equal(t, int32(0), hits.Load())
	})
}

type expiredCredentials struct{}

func (expiredCredentials) Apply(context.Context, http.Header) error {
	return constants.ErrTokenExpired
}

func TestClient_Interceptors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "tenant-1", request.Header.Get("X-Tenant"))
		writer.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	var seen *lockstep.HTTPResponse

	chain := lockstep.NewInterceptorChain()
	chain.AddRequestInterceptor(lockstep.HeaderInterceptor(map[string]string{"X-Tenant": "tenant-1"}))
	chain.AddResponseInterceptor(func(_ context.Context, req *lockstep.Request, resp *lockstep.HTTPResponse) error {
		assert.Equal(t, "Sync.Create", req.Name)
		seen = resp

		return errors.New("ignored")
	})

	logger := &MockLogger{}
	client := lshttp.NewClient(server.URL, nil, lshttp.WithInterceptors(chain), lshttp.WithLogger(logger))

	resp, err := client.Do(context.Background(), &lshttp.Request{
		Name:   "Sync.Create",
		Method: http.MethodPost,
		Path:   "/api/v1/Sync",
		Body:   map[string]string{"appEnrollmentId": "x"},
	})
	require.NoError(t, err)
	assert.Equal(t, 202, resp.StatusCode)
	require.NotNil(t, seen)
	assert.Equal(t, 202, seen.StatusCode)
	assert.Equal(t, "Response interceptor failed", logger.logs[0]["msg"])
}

func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()

	t.Run("retries on 5xx errors when enabled", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if attempts.Add(1) < 3 {
				writer.WriteHeader(http.StatusInternalServerError)

				return
			}

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := lshttp.NewClient(server.URL, nil, lshttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, int32(3), attempts.Load())
	})

	t.Run("exhausted retries return the last response", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := lshttp.NewClient(server.URL, nil, lshttp.WithRetryConfig(2, 10*time.Millisecond, 50*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode)
		assert.Equal(t, int32(3), attempts.Load())
	})

	t.Run("does not retry on client errors", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := lshttp.NewClient(server.URL, nil, lshttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assert.Equal(t, int32(1), attempts.Load())
	})
}
