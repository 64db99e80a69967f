package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ad402/payverify/internal/confirmwatch"
	"github.com/ad402/payverify/internal/pkg/logger"

	"github.com/urfave/cli/v3"
)

// shutdownTimeout bounds the graceful shutdown of the HTTP server.
const shutdownTimeout = 30 * time.Second

// serveCommand returns a CLI command that serves the HTTP API and runs the
// confirmation watcher.
//
// Usage example:
//
//	payverify serve
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM) or the
// server fails.
func serveCommand(newRuntime RuntimeFactory) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Description: "Serves the payment verification API and tracks confirmations of accepted payments.",
		Usage:       "Runs the HTTP API and the confirmation watcher. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) (err error) {
			rt, err := newRuntime(ctx)
			if err != nil {
				return fmt.Errorf("building runtime: %w", err)
			}
			if rt.Close != nil {
				defer func() {
					err = errors.Join(err, rt.Close())
				}()
			}

			return serve(ctx, rt.Server, rt.Watcher)
		},
	}
}

func serve(ctx context.Context, server HTTPServer, watcher confirmwatch.Service) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	if err := watcher.Start(ctx); err != nil {
		return err
	}
	defer watcher.Close()

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		logger.Info(ctx, "shutting down", "signal", sig.String())
	case <-ctx.Done():
		logger.Info(ctx, "shutting down", "error", ctx.Err())
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
