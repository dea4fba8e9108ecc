package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	appErrors "github.com/noah-isme/rate-my-teacher/pkg/errors"
)

func TestRecordMutationLabelsOutcome(t *testing.T) {
	m := NewMetricsService()
	m.RecordMutation("vote", done("/teachers/t-1#ratings", ""))
	m.RecordMutation("vote", invalid("/teachers/t-1", "Missing ids."))
	m.RecordMutation("vote", invalid("/teachers/t-1", "Missing ids."))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.mutations.WithLabelValues("vote", "ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.mutations.WithLabelValues("vote", appErrors.ErrValidation.Code)))
}

func TestMetricsHandlerServesRegistry(t *testing.T) {
	m := NewMetricsService()
	m.ObserveHTTPRequest(http.MethodGet, "/teachers", http.StatusOK, 20*time.Millisecond)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",path="/teachers",status="200"} 1`)
	assert.NotNil(t, m.Registry())
}

func TestNilMetricsServiceIsSafe(t *testing.T) {
	var m *MetricsService
	m.RecordMutation("x", Outcome{})
	m.RecordCacheOperation(true, time.Millisecond)
	m.ObserveCacheWrite(time.Millisecond)
	m.ObserveHTTPRequest(http.MethodGet, "/", 200, time.Millisecond)
	assert.Nil(t, m.Registry())

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
