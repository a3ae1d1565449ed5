package server

import (
	"go.uber.org/zap"
)

// Option Server option
type Option func(s *Server)

// WithAddress with server address option
func WithAddress(address string) Option {
	return func(s *Server) {
		s.Address = address
	}
}

// WithPort with server port option
func WithPort(port int) Option {
	return func(s *Server) {
		s.Port = port
	}
}

// WithLogger with logger option
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.Logger = logger
		}
	}
}

// WithDebug with debug option
func WithDebug(debug bool) Option {
	return func(s *Server) {
		s.Debug = debug
	}
}

// WithPathPrefix with path prefix option
func WithPathPrefix(prefix string) Option {
	return func(s *Server) {
		s.PathPrefix = prefix
	}
}

// WithCORS with CORS option
func WithCORS(enabled bool) Option {
	return func(s *Server) {
		s.CORS = enabled
	}
}

// WithStripQueryString with strip query string redirection option
func WithStripQueryString(enabled bool) Option {
	return func(s *Server) {
		s.StripQueryString = enabled
	}
}

// WithAccessLog with server access log option
func WithAccessLog(enabled bool) Option {
	return func(s *Server) {
		s.AccessLog = enabled
	}
}

// WithMetrics with metrics endpoint option
func WithMetrics(metrics Metrics) Option {
	return func(s *Server) {
		s.Metrics = metrics
	}
}

// WithSentry with Sentry DSN option
func WithSentry(dsn string) Option {
	return func(s *Server) {
		s.SentryDsn = dsn
	}
}
