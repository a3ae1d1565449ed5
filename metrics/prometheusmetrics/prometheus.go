package prometheusmetrics

import (
	"context"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// PrometheusMetrics standalone prometheus metrics endpoint, plus the
// engine-level counters recorded by the focalcrop App
type PrometheusMetrics struct {
	http.Server
	Path   string
	Logger *zap.Logger

	registry        *prometheus.Registry
	sessionsCreated prometheus.Counter
	dragsApplied    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New create new PrometheusMetrics
func New(options ...Option) *PrometheusMetrics {
	s := &PrometheusMetrics{
		Path:   "/metrics",
		Logger: zap.NewNop(),
	}
	s.Addr = ":5000"
	for _, option := range options {
		option(s)
	}

	s.sessionsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "focalcrop_sessions_created_total",
		Help: "Total number of crop sessions created",
	})
	s.dragsApplied = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "focalcrop_drags_applied_total",
		Help: "Total number of drag deltas applied, by tablet window pinned state",
	}, []string{"pinned"})
	s.requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "focalcrop_http_request_duration_seconds",
		Help:    "A histogram of http request latencies",
		Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"code", "method"})

	s.registry = prometheus.NewRegistry()
	s.registry.MustRegister(
		s.sessionsCreated,
		s.dragsApplied,
		s.requestDuration,
		collectors.NewGoCollector(),
	)

	mux := http.NewServeMux()
	mux.Handle(s.Path, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, s.Path, http.StatusPermanentRedirect)
	})
	s.Handler = mux

	return s
}

// Startup starts the metrics endpoint in the background
func (s *PrometheusMetrics) Startup(_ context.Context) error {
	go func() {
		if err := s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.Logger.Error("prometheus listen", zap.Error(err))
		}
	}()
	s.Logger.Info("prometheus listen", zap.String("addr", s.Addr), zap.String("path", s.Path))
	return nil
}

// Shutdown stops the metrics endpoint
func (s *PrometheusMetrics) Shutdown(ctx context.Context) error {
	return s.Server.Shutdown(ctx)
}

// Handle instruments the app handler with request duration metrics
func (s *PrometheusMetrics) Handle(next http.Handler) http.Handler {
	return promhttp.InstrumentHandlerDuration(s.requestDuration, next)
}

// SessionCreated implements focalcrop.Metrics
func (s *PrometheusMetrics) SessionCreated() {
	s.sessionsCreated.Inc()
}

// DragApplied implements focalcrop.Metrics
func (s *PrometheusMetrics) DragApplied(pinned bool) {
	s.dragsApplied.WithLabelValues(strconv.FormatBool(pinned)).Inc()
}

// Option PrometheusMetrics option
type Option func(s *PrometheusMetrics)

// WithAddr with listen address option
func WithAddr(addr string) Option {
	return func(s *PrometheusMetrics) {
		if addr != "" {
			s.Addr = addr
		}
	}
}

// WithPath with metrics path option
func WithPath(path string) Option {
	return func(s *PrometheusMetrics) {
		if path != "" {
			s.Path = path
		}
	}
}

// WithLogger with logger option
func WithLogger(logger *zap.Logger) Option {
	return func(s *PrometheusMetrics) {
		if logger != nil {
			s.Logger = logger
		}
	}
}
