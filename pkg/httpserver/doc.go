// Package httpserver wraps http.Server with graceful shutdown.
//
// Run blocks until the context is cancelled, an interrupt/SIGTERM arrives,
// or the listener fails; in the first two cases the server drains in-flight
// requests within the configured shutdown timeout. Configuration comes from
// functional options or an env-tagged Config struct.
//
//	srv := httpserver.New(httpserver.WithAddr(":8080"), httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
package httpserver
