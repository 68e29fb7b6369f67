package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// shutdownGracePeriod bounds how long in-flight requests may run once a
// termination signal arrives.
const shutdownGracePeriod = 10 * time.Second

// startHTTPServer serves the router until the process receives SIGINT or
// SIGTERM (or ctx is canceled), then drains in-flight requests and releases
// application resources before returning.
func (app *application) startHTTPServer(ctx context.Context, router http.Handler) error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", app.config.Server.Port),
		Handler: router,
	}

	serveCtx, stopServing := context.WithCancel(ctx)
	defer stopServing()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		app.logger.Info("Starting server", "port", app.config.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Error("Server failed", "error", err)
			stopServing()
		}
	}()

	select {
	case sig := <-signals:
		app.logger.Info("Shutting down server", "signal", sig.String())
	case <-serveCtx.Done():
		app.logger.Info("Server context canceled, shutting down")
	}

	drainCtx, cancelDrain := context.WithTimeout(context.Background(), shutdownGracePeriod)
	defer cancelDrain()

	if err := server.Shutdown(drainCtx); err != nil {
		app.logger.Error("Server shutdown failed", "error", err)
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	app.cleanup()
	app.logger.Info("Server shutdown completed")
	return nil
}
