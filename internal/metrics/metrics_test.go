package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sood122/yeild-pridiction/internal/fuzzy"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, OutcomeOK},
		{fuzzy.ErrUndefinedScore, OutcomeUndefined},
		{fmt.Errorf("wrap: %w", fuzzy.ErrInvalidInput), OutcomeInvalid},
		{fuzzy.ErrMissingInput, OutcomeInvalid},
		{errors.New("boom"), OutcomeError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Outcome(tt.err))
	}
}

func TestObserveEvaluation(t *testing.T) {
	m := New()

	m.ObserveEvaluation(8.67, nil)
	m.ObserveEvaluation(0, fuzzy.ErrUndefinedScore)
	m.ObserveEvaluation(0, fuzzy.ErrUndefinedScore)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.evaluations.WithLabelValues(OutcomeOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.evaluations.WithLabelValues(OutcomeUndefined)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.scores))
}

func TestObserveDatasetLoad(t *testing.T) {
	m := New()

	m.ObserveDatasetLoad("success", 120)
	m.ObserveDatasetLoad("failed", 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.datasetLoads.WithLabelValues("failed")))
	assert.Equal(t, 120.0, testutil.ToFloat64(m.datasetRows))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveEvaluation(1, nil)
	m.ObserveDatasetLoad("success", 1)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(m.GinMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGinMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	r := gin.New()
	r.Use(m.GinMiddleware())
	r.GET("/api/seasons/:season/crops", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	for _, path := range []string{"/api/seasons/Rabi/crops", "/api/seasons/Zaid/crops", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/seasons/:season/crops", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "unmatched", "404")))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), MetricHTTPRequestsTotal))
}
