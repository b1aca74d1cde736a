package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainCounters(t *testing.T) {
	r := NewRecorder()
	r.JoinRequested()
	r.JoinRequested()
	r.JoinDecided("accept")
	r.RoleChanged("leader")
	r.EventDecided("approved")
	r.EventDecided("approved")

	assert.Equal(t, float64(2), testutil.ToFloat64(r.joinRequests))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.joinDecisions.WithLabelValues("accept")))
	assert.Equal(t, float64(0), testutil.ToFloat64(r.joinDecisions.WithLabelValues("reject")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.roleChanges.WithLabelValues("leader")))
	assert.Equal(t, float64(2), testutil.ToFloat64(r.eventDecided.WithLabelValues("approved")))
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := NewRecorder()
	router := gin.New()
	router.Use(rec.Middleware())
	router.GET("/clubs/:clubID", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", gin.WrapH(rec.Handler()))

	for _, path := range []string{"/clubs/a", "/clubs/b", "/nowhere"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(rec.httpRequests.WithLabelValues("GET", "/clubs/:clubID", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(rec.httpRequests.WithLabelValues("GET", "unmatched", "404")))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "clubconnect_http_requests_total"))
}
