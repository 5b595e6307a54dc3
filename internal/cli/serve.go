package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ironsheep/textline-regions/internal/server"
)

// shutdownTimeout bounds how long in-flight HTTP calls may finish after a
// signal.
const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the MCP tools over stdio, or over HTTP with --http",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				return serveHTTP(cmd.Context(), addr)
			}
			return serveStdio(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "http", "", "listen address for the HTTP transport (e.g. :8080)")
	return cmd
}

func newServer(ctx context.Context) (*server.Server, error) {
	logger := loggerFromContext(ctx)
	return server.New(configFromContext(ctx), server.WithLogger(logger))
}

// serveStdio runs the MCP loop on stdin/stdout. stdout carries the protocol
// only; all logging goes to stderr.
func serveStdio(ctx context.Context) error {
	srv, err := newServer(ctx)
	if err != nil {
		return err
	}
	loggerFromContext(ctx).Debug("serving MCP over stdio", "version", version, "commit", commit)
	return srv.Run(ctx, os.Stdin, os.Stdout)
}

func serveHTTP(ctx context.Context, addr string) error {
	srv, err := newServer(ctx)
	if err != nil {
		return err
	}
	logger := loggerFromContext(ctx)

	hs := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("serving HTTP", "addr", addr)
		errc <- hs.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down HTTP")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return hs.Shutdown(shutdownCtx)
	}
}
