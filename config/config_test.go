package config

import (
	"testing"
	"time"

	"github.com/cshum/focalcrop"
	"github.com/cshum/focalcrop/metrics/prometheusmetrics"
	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	srv := CreateServer(nil)
	assert.Equal(t, ":8000", srv.Addr)

	app := srv.App.(*focalcrop.App)
	assert.False(t, app.Debug)
	assert.Equal(t, focalcrop.DefaultLayout(), app.Layout)
	assert.Equal(t, time.Hour, app.SessionTTL)
	assert.Equal(t, time.Minute, app.SweepInterval)
	assert.Equal(t, int64(-1), app.DragConcurrency)
	assert.False(t, app.DisableLayoutEndpoint)
	assert.Nil(t, app.Metrics)
	assert.Nil(t, srv.Metrics)
}

func TestBasic(t *testing.T) {
	srv := CreateServer([]string{
		"-debug",
		"-port", "2345",
		"-container-width", "1000",
		"-container-height", "500",
		"-mobile-width", "300",
		"-tablet-width", "600",
		"-session-ttl", "30m",
		"-drag-concurrency", "8",
		"-disable-layout-endpoint",
		"-server-cors",
		"-server-access-log",
	})
	assert.Equal(t, ":2345", srv.Addr)
	assert.True(t, srv.Debug)
	assert.True(t, srv.CORS)
	assert.True(t, srv.AccessLog)

	app := srv.App.(*focalcrop.App)
	assert.True(t, app.Debug)
	assert.Equal(t, focalcrop.Layout{
		ContainerWidth:  1000,
		ContainerHeight: 500,
		MobileWidth:     300,
		TabletWidth:     600,
	}, app.Layout)
	assert.Equal(t, 30*time.Minute, app.SessionTTL)
	assert.Equal(t, int64(8), app.DragConcurrency)
	assert.True(t, app.DisableLayoutEndpoint)
}

func TestVersion(t *testing.T) {
	assert.Nil(t, CreateServer([]string{"-version"}))
}

func TestEnvVars(t *testing.T) {
	t.Setenv("PORT", "7000")
	t.Setenv("TABLET_WIDTH", "500")
	srv := CreateServer(nil)
	assert.Equal(t, ":7000", srv.Addr)
	app := srv.App.(*focalcrop.App)
	assert.Equal(t, 500.0, app.Layout.TabletWidth)
}

func TestSentryDsn(t *testing.T) {
	srv := CreateServer([]string{
		"-sentry-dsn", "https://12345@sentry.com/123",
	})
	assert.Equal(t, "https://12345@sentry.com/123", srv.SentryDsn)
}

func TestPrometheusBind(t *testing.T) {
	srv := CreateServer([]string{
		"-port", "2345",
		"-prometheus-bind", ":6789",
		"-prometheus-path", "/myprom",
	})
	assert.Equal(t, ":2345", srv.Addr)
	pm := srv.Metrics.(*prometheusmetrics.PrometheusMetrics)
	assert.Equal(t, ":6789", pm.Addr)
	assert.Equal(t, "/myprom", pm.Path)

	app := srv.App.(*focalcrop.App)
	assert.Equal(t, pm, app.Metrics)
}

func TestInvalidLayout(t *testing.T) {
	assert.Panics(t, func() {
		CreateServer([]string{"-container-width", "0"})
	})
	assert.Panics(t, func() {
		CreateServer([]string{"-mobile-width", "-10"})
	})
	assert.Panics(t, func() {
		// mobile wider than tablet
		CreateServer([]string{"-mobile-width", "500", "-tablet-width", "400"})
	})
	assert.Panics(t, func() {
		// tablet wider than container
		CreateServer([]string{"-tablet-width", "900"})
	})
}
