package config

import (
	"flag"

	"github.com/cshum/focalcrop"
	"go.uber.org/zap"
)

// Callback parses the flag set and returns the configured logger
type Callback func() (logger *zap.Logger, isDebug bool)

// Func flag based config option
type Func func(fs *flag.FlagSet, cb Callback) focalcrop.Option

// ApplyFuncs applies config Funcs and transforms them into App options.
// Each Func registers its flags first, then defers to cb which parses
// the whole flag set, so every flag exists before parsing happens.
func ApplyFuncs(fs *flag.FlagSet, cb Callback, funcs ...Func) (options []focalcrop.Option) {
	options, _, _ = applyFuncs(fs, cb, funcs...)
	return
}

func applyFuncs(
	fs *flag.FlagSet, cb Callback, funcs ...Func,
) (options []focalcrop.Option, logger *zap.Logger, isDebug bool) {
	if len(funcs) == 0 {
		logger, isDebug = cb()
		return
	}
	var last = len(funcs) - 1
	var called bool
	if funcs[last] == nil {
		return applyFuncs(fs, cb, funcs[:last]...)
	}
	options = append(options, funcs[last](fs, func() (*zap.Logger, bool) {
		options, logger, isDebug = applyFuncs(fs, cb, funcs[:last]...)
		called = true
		return logger, isDebug
	}))
	if !called {
		var opts []focalcrop.Option
		opts, logger, isDebug = applyFuncs(fs, cb, funcs[:last]...)
		options = append(opts, options...)
		return options, logger, isDebug
	}
	return
}
