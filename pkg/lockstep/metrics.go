package lockstep

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metadataStartTime = "start_time"

// MetricsCollector records Prometheus metrics for API calls. A collector
// built with a nil registerer records nothing.
type MetricsCollector struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetricsCollector registers the client metrics on reg.
func NewMetricsCollector(reg prometheus.Registerer) *MetricsCollector {
	if reg == nil {
		return &MetricsCollector{}
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lockstep_client_requests_total",
		Help: "Lockstep API calls by endpoint and outcome.",
	}, []string{"endpoint", "method", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lockstep_client_request_duration_seconds",
		Help:    "Duration of Lockstep API calls in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint", "method"})
	reg.MustRegister(requests, duration)

	return &MetricsCollector{
		requests: requests,
		duration: duration,
	}
}

// Attach adds the collector's interceptors to chain.
func (m *MetricsCollector) Attach(chain *InterceptorChain) {
	chain.AddRequestInterceptor(MetricsRequestInterceptor(m))
	chain.AddResponseInterceptor(MetricsResponseInterceptor(m))
}

// Observe records one call. code is the HTTP status, or "error" when no
// response was obtained.
func (m *MetricsCollector) Observe(endpoint, method, code string, elapsed time.Duration) {
	if m == nil || m.requests == nil {
		return
	}

	endpoint = normalizeLabel(endpoint)
	m.requests.WithLabelValues(endpoint, method, code).Inc()
	m.duration.WithLabelValues(endpoint, method).Observe(elapsed.Seconds())
}

// MetricsRequestInterceptor records request start time.
func MetricsRequestInterceptor(collector *MetricsCollector) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		if req.Metadata == nil {
			req.Metadata = make(map[string]interface{})
		}

		req.Metadata[metadataStartTime] = time.Now()

		return nil
	}
}

// MetricsResponseInterceptor records response metrics.
func MetricsResponseInterceptor(collector *MetricsCollector) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *HTTPResponse) error {
		var elapsed time.Duration
		if startTime, ok := req.Metadata[metadataStartTime].(time.Time); ok {
			elapsed = time.Since(startTime)
		}

		code := "error"
		if resp.Error == nil {
			code = strconv.Itoa(resp.StatusCode)
		}

		collector.Observe(req.Name, req.Method, code, elapsed)

		return nil
	}
}

func normalizeLabel(label string) string {
	if label == "" {
		return "unknown"
	}

	return label
}
