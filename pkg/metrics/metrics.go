// Package metrics 提供基于Prometheus的指标收集
//
// 指标分两类：
// - HTTP指标：请求总数、耗时分布、在途请求数（由gin中间件采集）
// - 业务指标：图书创建/删除总数（由用例层上报）
//
// 指标通过 GET /metrics 以Prometheus文本格式暴露。
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal HTTP请求总数
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（秒）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// BooksCreatedTotal 图书创建总数
	BooksCreatedTotal prometheus.Counter

	// BooksDeletedTotal 图书删除总数
	BooksDeletedTotal prometheus.Counter

	initialized bool
)

// Init 初始化并注册全部指标
// 防止重复初始化（测试中可能多次调用）
func Init() {
	if initialized {
		return
	}
	initialized = true

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP请求耗时（秒）",
			// 桶设置：1ms、10ms、100ms、500ms、1s、5s、10s
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	BooksCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "books_created_total",
			Help: "图书创建总数",
		},
	)

	BooksDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "books_deleted_total",
			Help: "图书删除总数",
		},
	)
}

// GinMiddleware HTTP指标采集中间件
// 使用c.FullPath()而非原始URL作为path标签，避免/api/books/123造成标签爆炸
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		HTTPRequestsInProgress.Inc()

		c.Next()

		HTTPRequestsInProgress.Dec()

		path := c.FullPath()
		if path == "" {
			path = "unmatched" // 404路由
		}

		HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			path,
		).Observe(time.Since(start).Seconds())
	}
}

// Handler 返回/metrics端点的HTTP处理器
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

// IncCounter 计数器+1（nil安全，未Init时为no-op）
func IncCounter(counter prometheus.Counter) {
	if counter != nil {
		counter.Inc()
	}
}
