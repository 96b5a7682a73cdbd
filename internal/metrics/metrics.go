package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riquelima/SandyPetShop-v3/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const namespace = "petcare"

// Recorder owns the booking and HTTP collectors. It is registered on the
// given registerer so tests can use a private registry.
type Recorder struct {
	gatherer prometheus.Gatherer

	attempts      *prometheus.CounterVec
	cancellations *prometheus.CounterVec
	drift         prometheus.Gauge

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewRecorder(reg *prometheus.Registry) *Recorder {
	r := &Recorder{
		gatherer: reg,
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_attempts_total",
			Help:      "Booking attempts by service, final attempt state and rejection reason.",
		}, []string{"service", "state", "reason"}),
		cancellations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_cancelled_total",
			Help:      "Cancelled reservations by service.",
		}, []string{"service"}),
		drift: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "occupancy_drift_entries",
			Help:      "Entries that differ between the slot index and the reservation log at the last audit.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(r.attempts, r.cancellations, r.drift, r.requests, r.duration)
	return r
}

func (r *Recorder) AttemptFinished(service domain.ServiceType, state domain.AttemptState, reason string) {
	r.attempts.WithLabelValues(string(service), string(state), reason).Inc()
}

func (r *Recorder) ReservationCancelled(service domain.ServiceType) {
	r.cancellations.WithLabelValues(string(service)).Inc()
}

func (r *Recorder) OccupancyDrift(entries int) {
	r.drift.Set(float64(entries))
}

// Middleware counts requests per matched route.
func (r *Recorder) Middleware() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		r.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		r.duration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}
