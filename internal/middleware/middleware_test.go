package middleware_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/time-manager-api/internal/middleware"
)

func TestRequestID(t *testing.T) {
	var seen string
	h := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(middleware.RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/customers", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(middleware.RequestIDHeader))
}

func TestLogger_WritesRequestLine(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := middleware.RequestID(middleware.Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	req := httptest.NewRequest(http.MethodPost, "/projects?x=1", nil)
	req.Header.Set(middleware.RequestIDHeader, "rid-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"msg":"HTTP request"`)
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"request_id":"rid-1"`)
	assert.Contains(t, out, `"path":"/projects"`)
}

func TestRecoverer(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := middleware.Recoverer(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
	assert.Contains(t, buf.String(), "panic recovered")
}

func TestContentType(t *testing.T) {
	h := middleware.ContentType(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestRouteTemplate(t *testing.T) {
	tests := map[string]string{
		"/":                    middleware.UnmatchedRoute,
		"":                     middleware.UnmatchedRoute,
		"/customers":           "/customers",
		"/customers/":          "/customers",
		"/customers/15":        "/customers/{id}",
		"/time-entries/7/":     "/time-entries/{id}",
		"/reports/by-customer": "/reports/by-customer",
		"/reports/by-team":     middleware.UnmatchedRoute,
		"/health":              "/health",
		"/metrics":             "/metrics",
		"/customers/abc":       middleware.UnmatchedRoute,
		"/customers/1/notes":   middleware.UnmatchedRoute,
		"/random-1/x":          middleware.UnmatchedRoute,
	}

	for path, want := range tests {
		assert.Equal(t, want, middleware.RouteTemplate(path), path)
	}
}

func TestMetrics_CountsByRouteTemplate(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(registry)

	h := metrics.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/2") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))

	for _, path := range []string{"/customers/1", "/customers/3", "/customers/2"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	expected := `
# HELP http_requests_total Total number of HTTP requests.
# TYPE http_requests_total counter
http_requests_total{method="GET",path="/customers/{id}",status="200"} 2
http_requests_total{method="GET",path="/customers/{id}",status="404"} 1
`
	require.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected), "http_requests_total"))
	histograms, err := testutil.GatherAndCount(registry, "http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, histograms)
}

func TestMetrics_UnknownPathsShareOneSeries(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(registry)

	h := metrics.Handler(http.NotFoundHandler())
	for i := range 5 {
		path := fmt.Sprintf("/random-%d/x", i)
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	expected := `
# HELP http_requests_total Total number of HTTP requests.
# TYPE http_requests_total counter
http_requests_total{method="GET",path="unmatched",status="404"} 5
`
	require.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected), "http_requests_total"))
	series, err := testutil.GatherAndCount(registry, "http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, series)
}
