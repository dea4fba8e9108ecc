package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/rate-my-teacher/internal/service"
)

func TestMetricsHandlerReady(t *testing.T) {
	healthy := PingFunc(func(ctx context.Context) error { return nil })
	down := PingFunc(func(ctx context.Context) error { return errors.New("connection refused") })

	tests := []struct {
		name   string
		checks map[string]Pinger
		status int
		state  string
	}{
		{name: "all up", checks: map[string]Pinger{"postgres": healthy, "redis": healthy}, status: http.StatusOK, state: "ready"},
		{name: "redis down", checks: map[string]Pinger{"postgres": healthy, "redis": down}, status: http.StatusServiceUnavailable, state: "degraded"},
		{name: "cache disabled", checks: map[string]Pinger{"postgres": healthy, "redis": nil}, status: http.StatusOK, state: "ready"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewMetricsHandler(nil, tc.checks)
			c, w := newContext(httptest.NewRequest(http.MethodGet, "/ready", nil), nil)
			h.Ready(c)

			require.Equal(t, tc.status, w.Code)
			var body struct {
				Status string            `json:"status"`
				Checks map[string]string `json:"checks"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.state, body.Status)
			assert.Equal(t, "ok", body.Checks["postgres"])
			if tc.state == "degraded" {
				assert.Equal(t, "connection refused", body.Checks["redis"])
			}
		})
	}
}

func TestMetricsHandlerPrometheus(t *testing.T) {
	metrics := service.NewMetricsService()
	metrics.RecordMutation("vote", service.Outcome{Path: "/teachers/t-1"})

	h := NewMetricsHandler(metrics, nil)
	c, w := newContext(httptest.NewRequest(http.MethodGet, "/metrics", nil), nil)
	h.Prometheus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `form_mutations_total{operation="vote",outcome="ok"} 1`)

	c, w = newContext(httptest.NewRequest(http.MethodGet, "/metrics", nil), nil)
	NewMetricsHandler(nil, nil).Prometheus(c)
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
