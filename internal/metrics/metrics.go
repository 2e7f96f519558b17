// Package metrics exposes Prometheus collectors for the HTTP surface and for
// placed orders.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

type Metrics struct {
	gatherer prometheus.Gatherer

	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	ordersPlaced *prometheus.CounterVec
	salesTotal   *prometheus.CounterVec
}

// New registers every collector on a private registry, so several engines
// (one per test) can coexist in a process.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		gatherer: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "billing_http_requests_total",
			Help: "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "billing_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		ordersPlaced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "billing_orders_placed_total",
			Help: "Orders recorded in the ledger by mode and payment method.",
		}, []string{"mode", "payment_method"}),
		salesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "billing_sales_amount_total",
			Help: "Sum of grand totals of placed orders by payment method.",
		}, []string{"payment_method"}),
	}
	reg.MustRegister(m.requests, m.duration, m.ordersPlaced, m.salesTotal)
	return m
}

// GinMiddleware records one request sample per call.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		m.requests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// ObserveOrder counts a placed order and adds its grand total to sales.
func (m *Metrics) ObserveOrder(mode, paymentMethod string, grandTotal decimal.Decimal) {
	if m == nil {
		return
	}
	m.ordersPlaced.WithLabelValues(mode, paymentMethod).Inc()
	amount, _ := grandTotal.Float64()
	m.salesTotal.WithLabelValues(paymentMethod).Add(amount)
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
