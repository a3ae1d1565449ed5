package focalcrop

import (
	"time"

	"go.uber.org/zap"
)

// Option App option
type Option func(app *App)

// WithLogger with logger option
func WithLogger(logger *zap.Logger) Option {
	return func(app *App) {
		if logger != nil {
			app.Logger = logger
		}
	}
}

// WithDebug with debug option
func WithDebug(debug bool) Option {
	return func(app *App) {
		app.Debug = debug
	}
}

// WithLayout with container and crop window layout option
func WithLayout(layout Layout) Option {
	return func(app *App) {
		app.Layout = layout
	}
}

// WithSessionTTL with idle session expiry option
func WithSessionTTL(ttl time.Duration) Option {
	return func(app *App) {
		app.SessionTTL = ttl
	}
}

// WithSweepInterval with expired session sweep interval option
func WithSweepInterval(interval time.Duration) Option {
	return func(app *App) {
		if interval > 0 {
			app.SweepInterval = interval
		}
	}
}

// WithDragConcurrency with semaphore size for concurrent drag applies option
func WithDragConcurrency(n int64) Option {
	return func(app *App) {
		app.DragConcurrency = n
	}
}

// WithDisableLayoutEndpoint with disable /layout endpoint option
func WithDisableLayoutEndpoint(disabled bool) Option {
	return func(app *App) {
		app.DisableLayoutEndpoint = disabled
	}
}

// WithMetrics with metrics recorder option
func WithMetrics(metrics Metrics) Option {
	return func(app *App) {
		app.Metrics = metrics
	}
}

// WithOptions with nested options
func WithOptions(options ...Option) Option {
	return func(app *App) {
		for _, option := range options {
			option(app)
		}
	}
}
