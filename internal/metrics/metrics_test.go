package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestObserveOrder(t *testing.T) {
	m := New()
	m.ObserveOrder("Dine-In", "UPI", decimal.RequireFromString("189.00"))
	m.ObserveOrder("Dine-In", "UPI", decimal.RequireFromString("210.00"))
	m.ObserveOrder("Takeaway", "Cash", decimal.RequireFromString("63.00"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ordersPlaced.WithLabelValues("Dine-In", "UPI")))
	assert.Equal(t, 399.0, testutil.ToFloat64(m.salesTotal.WithLabelValues("UPI")))

	var nilMetrics *Metrics
	assert.NotPanics(t, func() { nilMetrics.ObserveOrder("Dine-In", "Cash", decimal.Zero) })
}

func TestGinMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()
	r := gin.New()
	r.Use(m.GinMiddleware())
	r.GET("/v1/menu", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/menu", nil))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/v1/menu", "GET", "200")))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "billing_http_requests_total"))
}
