// Package httpserver provides a graceful http.Server wrapper tuned for
// long-lived streaming responses.
//
// The server shuts down cleanly on context cancellation or SIGINT/SIGTERM
// and keeps the write timeout disabled by default so open SSE connections
// are not severed mid-stream.
//
// # Usage
//
//	srv := httpserver.New(
//		httpserver.WithAddr(":8080"),
//		httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Configuration can also come from the environment via Config and
// NewFromConfig.
package httpserver
