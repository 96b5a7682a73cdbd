package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/riquelima/SandyPetShop-v3/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

func TestRecorder_Counters(t *testing.T) {
	r := NewRecorder(prometheus.NewRegistry())

	r.AttemptFinished(domain.ServiceGrooming, domain.AttemptConfirmed, "")
	r.AttemptFinished(domain.ServiceGrooming, domain.AttemptRolledBack, "capacity_exceeded")
	r.AttemptFinished(domain.ServiceGrooming, domain.AttemptRolledBack, "capacity_exceeded")
	r.ReservationCancelled(domain.ServiceHotel)
	r.OccupancyDrift(3)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.attempts.WithLabelValues("grooming", "confirmed", "")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.attempts.WithLabelValues("grooming", "rolled_back", "capacity_exceeded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.cancellations.WithLabelValues("hotel")))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.drift))
}

func TestRecorder_MiddlewareAndHandler(t *testing.T) {
	r := NewRecorder(prometheus.NewRegistry())

	engine := ginext.New("test")
	engine.Use(r.Middleware())
	engine.GET("/ping", func(c *ginext.Context) { c.Status(http.StatusNoContent) })
	engine.GET("/metrics", func(c *ginext.Context) { r.Handler().ServeHTTP(c.Writer, c.Request) })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(r.requests.WithLabelValues("GET", "/ping", "204")))

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "petcare_http_requests_total"))
}
