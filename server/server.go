// Package server exposes a runner.Runner over HTTP/JSON with gin.
//
// Routes:
//
//	POST /api/run         run one algorithm, returns runner.Response
//	GET  /api/health      liveness plus supported algorithm ids
//	GET  /api/algorithms  algorithm catalog
//	GET  /metrics         Prometheus exposition
//
// Errors are JSON objects with an "error" field. Bad input answers 400
// (plus "supported_algorithms" for unknown ids), algorithm preconditions
// answer 422, a run that outlives the request timeout answers 504 and
// anything else 500.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/graphstudio/runner"
)

// Defaults applied by New.
const (
	DefaultRequestTimeout = 10 * time.Second
	DefaultMaxBodyBytes   = 8 << 20
	shutdownGrace         = 5 * time.Second
)

// Server routes HTTP requests to a runner.
type Server struct {
	runner  runner.Runner
	logger  *slog.Logger
	origin  string
	timeout time.Duration
	maxBody int64
	limiter *rate.Limiter
	engine  *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the access and error logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithAllowedOrigin sets Access-Control-Allow-Origin ("*" by default).
func WithAllowedOrigin(origin string) Option {
	return func(s *Server) {
		if origin != "" {
			s.origin = origin
		}
	}
}

// WithRequestTimeout bounds each /api/run call.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithRateLimit allows rps requests per second on /api/run with the given
// burst. rps <= 0 disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(s *Server) {
		if rps <= 0 {
			s.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithMaxBodyBytes caps the request body size.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBody = n
		}
	}
}

// New builds a Server around r.
func New(r runner.Runner, opts ...Option) *Server {
	s := &Server{
		runner:  r,
		logger:  slog.New(slog.DiscardHandler),
		origin:  "*",
		timeout: DefaultRequestTimeout,
		maxBody: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.engine = s.routes()
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), otelgin.Middleware("graphstudio"), requestID(), accessLog(s.logger), cors(s.origin))

	api := r.Group("/api")
	api.GET("/health", s.handleHealth)
	api.GET("/algorithms", s.handleAlgorithms)
	api.POST("/run", rateLimit(s.limiter), bodyLimit(s.maxBody), timeout(s.timeout), s.handleRun)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		s.logger.Info("shutting down", slog.String("addr", addr))
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}
