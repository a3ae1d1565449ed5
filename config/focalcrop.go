package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/cshum/focalcrop"
)

// NewApp creates the focalcrop App from config Funcs
func NewApp(fs *flag.FlagSet, cb Callback, funcs ...Func) *focalcrop.App {
	return focalcrop.New(ApplyFuncs(fs, cb, append(funcs, withFocalcrop)...)...)
}

func withFocalcrop(fs *flag.FlagSet, cb Callback) focalcrop.Option {
	var (
		containerWidth = fs.Float64("container-width", 800,
			"Container width in pixels")
		containerHeight = fs.Float64("container-height", 400,
			"Container height in pixels")
		mobileWidth = fs.Float64("mobile-width", 200,
			"Mobile crop window width in pixels, must not exceed tablet-width")
		tabletWidth = fs.Float64("tablet-width", 400,
			"Tablet crop window width in pixels, must not exceed container-width")
		sessionTTL = fs.Duration("session-ttl", time.Hour,
			"Idle duration after which a crop session is dropped. Set 0 to keep sessions forever")
		sweepInterval = fs.Duration("session-sweep-interval", time.Minute,
			"Interval between expired session sweeps")
		dragConcurrency = fs.Int64("drag-concurrency", -1,
			"Semaphore size for concurrent drag applies. Set -1 for no limit")
		disableLayoutEndpoint = fs.Bool("disable-layout-endpoint", false,
			"Disable /layout endpoint")

		logger, isDebug = cb()
	)

	layout := focalcrop.Layout{
		ContainerWidth:  *containerWidth,
		ContainerHeight: *containerHeight,
		MobileWidth:     *mobileWidth,
		TabletWidth:     *tabletWidth,
	}
	// the engine assumes validated input, the config layer is the
	// single place malformed layout gets rejected
	if err := validateLayout(layout); err != nil {
		panic(err)
	}

	return focalcrop.WithOptions(
		focalcrop.WithLayout(layout),
		focalcrop.WithSessionTTL(*sessionTTL),
		focalcrop.WithSweepInterval(*sweepInterval),
		focalcrop.WithDragConcurrency(*dragConcurrency),
		focalcrop.WithDisableLayoutEndpoint(*disableLayoutEndpoint),
		focalcrop.WithLogger(logger),
		focalcrop.WithDebug(isDebug),
	)
}

func validateLayout(l focalcrop.Layout) error {
	if l.ContainerWidth <= 0 || l.ContainerHeight <= 0 {
		return fmt.Errorf("container size must be positive, got %gx%g",
			l.ContainerWidth, l.ContainerHeight)
	}
	if l.MobileWidth <= 0 || l.TabletWidth <= 0 {
		return fmt.Errorf("crop window widths must be positive, got mobile %g tablet %g",
			l.MobileWidth, l.TabletWidth)
	}
	if l.MobileWidth > l.TabletWidth {
		return fmt.Errorf("mobile-width %g must not exceed tablet-width %g",
			l.MobileWidth, l.TabletWidth)
	}
	if l.TabletWidth > l.ContainerWidth {
		return fmt.Errorf("tablet-width %g must not exceed container-width %g",
			l.TabletWidth, l.ContainerWidth)
	}
	return nil
}
