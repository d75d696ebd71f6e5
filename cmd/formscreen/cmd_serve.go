package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formscreen/components/profileform"
	"github.com/goliatone/go-formscreen/pkg/render"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(c *cli) *cobra.Command {
	var (
		addr     string
		basePath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the profile screen over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := c.resolveTheme()
			if err != nil {
				return err
			}
			handler, pattern, err := newServeMux(c, basePath, theme)
			if err != nil {
				return err
			}

			listener, err := net.Listen("tcp", addr)
			if err != nil {
				return err
			}
			server := &http.Server{
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
			}
			c.logger.Info("serving profile screen",
				zap.String("addr", listener.Addr().String()),
				zap.String("path", pattern),
			)
			return runServer(cmd.Context(), server, listener, c.logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().StringVar(&basePath, "base-path", "/", "Path prefix for the profile route")
	return cmd
}

func newServeMux(c *cli, basePath string, theme render.Theme) (http.Handler, string, error) {
	mux := http.NewServeMux()
	component := profileform.New(
		profileform.WithLogger(c.logger.Named("profileform")),
		profileform.WithStrict(c.strict),
		profileform.WithLocale(c.resolveLocale()),
		profileform.WithCatalog(c.catalog),
		profileform.WithTheme(theme),
	)
	routes, err := component.RegisterRoutes(mux, basePath)
	if err != nil {
		return nil, "", err
	}
	pattern := routes.Form
	if pattern != "/" {
		mux.Handle("/{$}", http.RedirectHandler(pattern, http.StatusFound))
	}
	return mux, pattern, nil
}

func runServer(ctx context.Context, server *http.Server, listener net.Listener, logger *zap.Logger) error {
	errs := make(chan error, 1)
	go func() {
		errs <- server.Serve(listener)
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
