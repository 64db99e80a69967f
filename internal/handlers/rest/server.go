// Package rest exposes payment verification over HTTP.
package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/ad402/payverify/internal/metrics"
	"github.com/ad402/payverify/internal/paymentproc"
	"github.com/ad402/payverify/internal/payverify"
	"github.com/ad402/payverify/internal/pkg/logger"
	"github.com/ad402/payverify/internal/ratelimit"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthChecker reports whether a dependency of the API is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Server is the HTTP API.
type Server struct {
	payments   paymentproc.Service
	verifier   payverify.Service
	limiter    ratelimit.Limiter
	ipRule     ratelimit.Rule
	walletRule ratelimit.Rule
	metrics    metrics.Recorder
	gatherer   prometheus.Gatherer
	health     HealthChecker
	now        func() time.Time
	router     *chi.Mux
}

type config struct {
	limiter    ratelimit.Limiter
	ipRule     ratelimit.Rule
	walletRule ratelimit.Rule
	metrics    metrics.Recorder
	gatherer   prometheus.Gatherer
	health     HealthChecker
}

// Option configures the server built by New.
type Option func(*config)

// WithRateLimiter enforces the IP and wallet rules through l. Without it
// requests are not limited.
func WithRateLimiter(l ratelimit.Limiter) Option {
	return func(c *config) {
		c.limiter = l
	}
}

// WithRules replaces ratelimit.IPRule and ratelimit.WalletRule.
func WithRules(ip, wallet ratelimit.Rule) Option {
	return func(c *config) {
		c.ipRule = ip
		c.walletRule = wallet
	}
}

// WithMetrics records rate limit rejections on r.
func WithMetrics(r metrics.Recorder) Option {
	return func(c *config) {
		c.metrics = r
	}
}

// WithGatherer serves g on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(c *config) {
		c.gatherer = g
	}
}

// WithHealthChecker makes /healthz report 503 while h fails.
func WithHealthChecker(h HealthChecker) Option {
	return func(c *config) {
		c.health = h
	}
}

// New creates the HTTP API over the payment processor and the verifier.
func New(payments paymentproc.Service, verifier payverify.Service, opts ...Option) *Server {
	cfg := config{
		ipRule:     ratelimit.IPRule,
		walletRule: ratelimit.WalletRule,
		metrics:    metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Server{
		payments:   payments,
		verifier:   verifier,
		limiter:    cfg.limiter,
		ipRule:     cfg.ipRule,
		walletRule: cfg.walletRule,
		metrics:    cfg.metrics,
		gatherer:   cfg.gatherer,
		health:     cfg.health,
		now:        time.Now,
		router:     chi.NewRouter(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(clientIP)
	s.router.Use(requestLogger)
	s.router.Use(middleware.Recoverer)
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	if s.gatherer != nil {
		s.router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	s.router.Route("/v1", func(r chi.Router) {
		r.Use(s.rateLimitByIP)

		r.Get("/networks", s.handleNetworks)

		r.Route("/payments", func(r chi.Router) {
			r.Post("/verify", s.handleVerify)
			r.Get("/{network}/{hash}", s.handlePayment)
			r.Get("/{network}/{hash}/confirmations", s.handleConfirmations)
		})
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		if err := s.health.Ping(r.Context()); err != nil {
			logger.Warn(r.Context(), "health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// requestLogger tags the request context with its id and logs every
// response.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.Derive(r.Context(), "http.request_id", middleware.GetReqID(r.Context()))
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r.WithContext(ctx))

		logger.Debug(ctx, "http request served",
			"http.method", r.Method,
			"http.path", r.URL.Path,
			"http.status", ww.Status(),
			"http.duration", time.Since(start),
		)
	})
}
