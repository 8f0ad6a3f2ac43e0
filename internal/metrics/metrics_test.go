package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveFetch(t *testing.T) {
	m := New()

	m.ObserveFetch("page", "ok")
	m.ObserveFetch("page", "ok")
	m.ObserveFetch("page", "error")

	assert.InDelta(t, 2, testutil.ToFloat64(m.ContentFetches.WithLabelValues("page", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ContentFetches.WithLabelValues("page", "error")), 0)
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.NoRoute(func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	for _, path := range []string{"/healthz", "/some/page"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `builder_site_http_request_duration_seconds_count{method="GET",route="/healthz",status="200"} 1`)
	assert.Contains(t, body, `route="catchall",status="404"`)
}
