package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/TheZeroSlave/zapsentry"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// App the http.Handler with startup and shutdown lifecycle
type App interface {
	http.Handler
	Startup(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Metrics optional metrics endpoint with its own lifecycle, plus a
// middleware instrumenting the app handler
type Metrics interface {
	Startup(ctx context.Context) error
	Shutdown(ctx context.Context) error
	Handle(next http.Handler) http.Handler
}

// Server wraps the App with additional http and app lifecycle handling
type Server struct {
	http.Server
	App              App
	Metrics          Metrics
	Logger           *zap.Logger
	Debug            bool
	Address          string
	Port             int
	CertFile         string
	KeyFile          string
	PathPrefix       string
	SentryDsn        string
	CORS             bool
	StripQueryString bool
	AccessLog        bool
}

// New create new Server
func New(app App, options ...Option) *Server {
	s := &Server{}
	s.App = app
	s.Port = 8000
	s.ReadTimeout = time.Second * 30
	s.MaxHeaderBytes = 1 << 20
	s.Logger = zap.NewNop()

	for _, option := range options {
		option(s)
	}
	s.Addr = s.Address + ":" + strconv.Itoa(s.Port)

	if s.SentryDsn != "" {
		s.Logger = attachSentry(s.Logger, s.SentryDsn)
	}

	s.Handler = pathHandler(http.MethodGet, map[string]http.HandlerFunc{
		"/favicon.ico": handleFavicon,
		"/health":      handleHealth,
	})(s.App)

	if s.Metrics != nil {
		s.Handler = s.Metrics.Handle(s.Handler)
	}
	if s.PathPrefix != "" {
		s.Handler = http.StripPrefix(s.PathPrefix, s.Handler)
	}
	if s.StripQueryString {
		s.Handler = stripQueryStringHandler(s.Handler)
	}
	if s.AccessLog {
		s.Handler = s.accessLogHandler(s.Handler)
	}
	if s.CORS {
		s.Handler = corsHandler(s.Handler)
	}
	s.Handler = s.panicHandler(s.Handler)
	return s
}

// Run server blocking run until termination signal, with graceful shutdown
func (s *Server) Run() {
	if err := s.App.Startup(context.Background()); err != nil {
		s.Logger.Fatal("app start", zap.Error(err))
	}
	if s.Metrics != nil {
		if err := s.Metrics.Startup(context.Background()); err != nil {
			s.Logger.Fatal("metrics start", zap.Error(err))
		}
	}
	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := s.listenAndServe(); err != nil && err != http.ErrServerClosed {
			s.Logger.Fatal("listen", zap.Error(err))
		}
	}()

	s.Logger.Info("server start", zap.String("addr", s.Addr))
	<-done

	// graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		s.Logger.Error("server shutdown", zap.Error(err))
	}
	if s.Metrics != nil {
		if err := s.Metrics.Shutdown(ctx); err != nil {
			s.Logger.Error("metrics shutdown", zap.Error(err))
		}
	}
	if err := s.App.Shutdown(ctx); err != nil {
		s.Logger.Error("app shutdown", zap.Error(err))
	}
	s.Logger.Info("exit")
}

func (s *Server) listenAndServe() error {
	if s.CertFile != "" && s.KeyFile != "" {
		return s.ListenAndServeTLS(s.CertFile, s.KeyFile)
	}
	return s.ListenAndServe()
}

func attachSentry(logger *zap.Logger, dsn string) *zap.Logger {
	client, err := sentry.NewClient(sentry.ClientOptions{Dsn: dsn})
	if err != nil {
		logger.Error("sentry init", zap.Error(err))
		return logger
	}
	core, err := zapsentry.NewCore(zapsentry.Configuration{
		Level:             zapcore.ErrorLevel,
		EnableBreadcrumbs: true,
		BreadcrumbLevel:   zapcore.InfoLevel,
	}, zapsentry.NewSentryClientFromClient(client))
	if err != nil {
		logger.Error("sentry core", zap.Error(err))
		return logger
	}
	return zapsentry.AttachCoreToLogger(core, logger)
}
