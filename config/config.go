package config

import (
	"flag"
	"fmt"
	"runtime"

	"github.com/cshum/focalcrop"
	"github.com/cshum/focalcrop/metrics/prometheusmetrics"
	"github.com/cshum/focalcrop/server"
	"github.com/peterbourgon/ff/v3"
	"go.uber.org/zap"
)

// CreateServer creates the focalcrop Server from command line arguments,
// environment variables and optional .env config file
func CreateServer(args []string, funcs ...Func) (srv *server.Server) {
	var (
		fs     = flag.NewFlagSet("focalcrop", flag.ExitOnError)
		logger *zap.Logger
		err    error
		app    *focalcrop.App

		debug        = fs.Bool("debug", false, "Debug mode")
		version      = fs.Bool("version", false, "Focalcrop version")
		port         = fs.Int("port", 8000, "Server port")
		goMaxProcess = fs.Int("gomaxprocs", 0, "GOMAXPROCS")

		_ = fs.String("config", ".env", "Retrieve configuration from the given file")

		serverAddress = fs.String("server-address", "",
			"Server address")
		serverPathPrefix = fs.String("server-path-prefix", "",
			"Server path prefix")
		serverCORS = fs.Bool("server-cors", false,
			"Enable CORS")
		serverStripQueryString = fs.Bool("server-strip-query-string", false,
			"Enable strip query string redirection")
		serverAccessLog = fs.Bool("server-access-log", false,
			"Enable server access log")

		sentryDsn = fs.String("sentry-dsn", "",
			"Sentry DSN for error reporting")
		prometheusBind = fs.String("prometheus-bind", "",
			"Specify address and port to enable Prometheus metrics, e.g. :5000")
		prometheusPath = fs.String("prometheus-path", "/metrics",
			"Prometheus metrics path")
	)

	app = NewApp(fs, func() (*zap.Logger, bool) {
		if err = ff.Parse(fs, args,
			ff.WithEnvVars(),
			ff.WithConfigFileFlag("config"),
			ff.WithIgnoreUndefined(true),
			ff.WithAllowMissingConfigFile(true),
			ff.WithConfigFileParser(ff.EnvParser),
		); err != nil {
			panic(err)
		}
		if *debug {
			if logger, err = zap.NewDevelopment(); err != nil {
				panic(err)
			}
		} else {
			if logger, err = zap.NewProduction(); err != nil {
				panic(err)
			}
		}
		return logger, *debug
	}, funcs...)

	if *version {
		fmt.Println(focalcrop.Version)
		return
	}

	if *goMaxProcess > 0 {
		logger.Debug("GOMAXPROCS", zap.Int("count", *goMaxProcess))
		runtime.GOMAXPROCS(*goMaxProcess)
	}

	options := []server.Option{
		server.WithAddress(*serverAddress),
		server.WithPort(*port),
		server.WithPathPrefix(*serverPathPrefix),
		server.WithCORS(*serverCORS),
		server.WithStripQueryString(*serverStripQueryString),
		server.WithAccessLog(*serverAccessLog),
		server.WithSentry(*sentryDsn),
		server.WithLogger(logger),
		server.WithDebug(*debug),
	}
	if *prometheusBind != "" {
		metrics := prometheusmetrics.New(
			prometheusmetrics.WithAddr(*prometheusBind),
			prometheusmetrics.WithPath(*prometheusPath),
			prometheusmetrics.WithLogger(logger),
		)
		app.Metrics = metrics
		options = append(options, server.WithMetrics(metrics))
	}
	return server.New(app, options...)
}
