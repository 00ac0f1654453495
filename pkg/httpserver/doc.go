// Package httpserver runs an http.Server with environment-driven
// configuration, OS signal handling, and graceful shutdown.
//
// Typical usage:
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, handler); err != nil {
//		log.Error("server exited", logger.Error(err))
//	}
//
// Run blocks until the context is cancelled, SIGINT/SIGTERM arrives, or the
// listener fails. HealthCheckHandler provides liveness and readiness probes
// over a set of dependency check functions.
package httpserver
