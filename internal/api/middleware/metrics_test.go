package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekositon/NS-StudioService/pkg/metrics"
)

func TestMetricsMiddlewareRecordsRequest(t *testing.T) {
	collector := metrics.New("test-service")

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(collector, "test-service"))
	r.HandleFunc("/api/v1/bookings/{bookingId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/42", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	labels := map[string]string{}
	for _, family := range families {
		if family.GetName() != "http_requests_total" {
			continue
		}
		require.Len(t, family.GetMetric(), 1)
		m := family.GetMetric()[0]
		assert.Equal(t, float64(1), m.GetCounter().GetValue())
		for _, pair := range m.GetLabel() {
			labels[pair.GetName()] = pair.GetValue()
		}
	}

	require.NotEmpty(t, labels, "http_requests_total must be recorded")
	assert.Equal(t, http.MethodGet, labels["method"])
	// Путь из шаблона роута, а не с подставленным ID
	assert.Equal(t, "/api/v1/bookings/{bookingId}", labels["path"])
	assert.Equal(t, "204", labels["status"])
}
