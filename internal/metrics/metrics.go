// Package metrics 暴露 Prometheus 指标：推荐计算、HTTP 请求与数据集加载
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Sood122/yeild-pridiction/internal/fuzzy"
)

// 指标名
const (
	MetricEvaluationsTotal    = "cropwise_evaluations_total"
	MetricScore               = "cropwise_score"
	MetricHTTPRequestsTotal   = "cropwise_http_requests_total"
	MetricHTTPDurationSeconds = "cropwise_http_request_duration_seconds"
	MetricDatasetLoadsTotal   = "cropwise_dataset_loads_total"
	MetricDatasetRows         = "cropwise_dataset_rows"
)

// 计算结果分类
const (
	OutcomeOK        = "ok"
	OutcomeUndefined = "undefined"
	OutcomeInvalid   = "invalid"
	OutcomeError     = "error"
)

// Metrics 指标集合，使用独立 registry
// 所有方法对 nil 接收者安全，未启用指标时直接跳过
type Metrics struct {
	registry *prometheus.Registry

	evaluations  *prometheus.CounterVec
	scores       prometheus.Histogram
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	datasetLoads *prometheus.CounterVec
	datasetRows  prometheus.Gauge
}

// New 创建并注册全部指标
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricEvaluationsTotal,
			Help: "Recommendation score evaluations by outcome.",
		}, []string{"outcome"}),
		scores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    MetricScore,
			Help:    "Distribution of computed recommendation scores.",
			Buckets: prometheus.LinearBuckets(1, 1, 10),
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricHTTPRequestsTotal,
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    MetricHTTPDurationSeconds,
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		datasetLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricDatasetLoadsTotal,
			Help: "Dataset load attempts by final status.",
		}, []string{"status"}),
		datasetRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: MetricDatasetRows,
			Help: "Rows in the most recently loaded dataset.",
		}),
	}

	m.registry.MustRegister(
		m.evaluations,
		m.scores,
		m.httpRequests,
		m.httpDuration,
		m.datasetLoads,
		m.datasetRows,
	)
	return m
}

// Registry 底层 registry（用于测试）
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler /metrics 处理器
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveEvaluation 记录一次分数计算
func (m *Metrics) ObserveEvaluation(score float64, err error) {
	if m == nil {
		return
	}
	outcome := Outcome(err)
	m.evaluations.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK {
		m.scores.Observe(score)
	}
}

// ObserveDatasetLoad 记录一次数据集加载
func (m *Metrics) ObserveDatasetLoad(status string, rows int) {
	if m == nil {
		return
	}
	m.datasetLoads.WithLabelValues(status).Inc()
	if rows > 0 {
		m.datasetRows.Set(float64(rows))
	}
}

// GinMiddleware 按路由模板统计请求，未匹配路由记为 "unmatched"
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		m.httpRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// Outcome 将计算错误归类
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, fuzzy.ErrUndefinedScore):
		return OutcomeUndefined
	case errors.Is(err, fuzzy.ErrInvalidInput), errors.Is(err, fuzzy.ErrMissingInput):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}
