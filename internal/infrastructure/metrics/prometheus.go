package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	usecasecontract "github.com/mikiasgoitom/ClubConnect/internal/usecase/contract"
)

const namespace = "clubconnect"

// Recorder owns every collector the service exports. Each instance has its
// own registry so tests can build as many as they like.
type Recorder struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec

	joinRequests  prometheus.Counter
	joinDecisions *prometheus.CounterVec
	removals      prometheus.Counter
	roleChanges   *prometheus.CounterVec
	clubsCreated  prometheus.Counter
	eventsCreated prometheus.Counter
	eventDecided  *prometheus.CounterVec
}

var _ usecasecontract.IMetricsRecorder = (*Recorder)(nil)

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		joinRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "join_requests_total",
			Help:      "Join requests submitted.",
		}),
		joinDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "join_decisions_total",
			Help:      "Join requests decided, by decision.",
		}, []string{"decision"}),
		removals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "members_removed_total",
			Help:      "Members removed from clubs.",
		}),
		roleChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "role_changes_total",
			Help:      "Administrative role changes, by new role.",
		}, []string{"role"}),
		clubsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clubs_created_total",
			Help:      "Clubs created.",
		}),
		eventsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_proposed_total",
			Help:      "Events proposed by coordinators.",
		}),
		eventDecided: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_decisions_total",
			Help:      "Event approvals and rejections.",
		}, []string{"status"}),
	}
	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.httpRequests, r.httpLatency,
		r.joinRequests, r.joinDecisions, r.removals, r.roleChanges,
		r.clubsCreated, r.eventsCreated, r.eventDecided,
	)
	return r
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Middleware counts and times every request. Unmatched routes are grouped
// under one label to keep cardinality bounded.
func (r *Recorder) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		r.httpRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		r.httpLatency.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

func (r *Recorder) JoinRequested()              { r.joinRequests.Inc() }
func (r *Recorder) JoinDecided(decision string) { r.joinDecisions.WithLabelValues(decision).Inc() }
func (r *Recorder) MemberRemoved()              { r.removals.Inc() }
func (r *Recorder) RoleChanged(role string)     { r.roleChanges.WithLabelValues(role).Inc() }
func (r *Recorder) ClubCreated()                { r.clubsCreated.Inc() }
func (r *Recorder) EventProposed()              { r.eventsCreated.Inc() }
func (r *Recorder) EventDecided(status string)  { r.eventDecided.WithLabelValues(status).Inc() }
