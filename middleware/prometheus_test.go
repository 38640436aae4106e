package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware_CountsByRoute(t *testing.T) {
	r := gin.New()
	r.Use(PrometheusMiddleware())
	r.GET("/totalActivity", func(c *gin.Context) {
		c.String(http.StatusBadRequest, "Missing userId")
	})

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/totalActivity", "400")
	before := testutil.ToFloat64(counter)

	for i := 0; i < 3; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/totalActivity?x=1", nil))
	}

	assert.Equal(t, before+3, testutil.ToFloat64(counter))
	assert.Equal(t, 0.0, testutil.ToFloat64(httpRequestsInFlight))
}

func TestPrometheusMiddleware_UnmatchedRoute(t *testing.T) {
	r := gin.New()
	r.Use(PrometheusMiddleware())

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")
	before := testutil.ToFloat64(counter)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
