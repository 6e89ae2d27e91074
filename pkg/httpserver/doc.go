// Package httpserver runs an http.Server until its context is cancelled and
// then shuts it down gracefully within a configurable timeout.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
//
// Config carries env tags (HTTP_ADDR, HTTP_*_TIMEOUT) for pkg/config.
package httpserver
