// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"astrograph/internal/api"
	"astrograph/internal/config"
	"astrograph/internal/logger"
	"astrograph/internal/plotspec"
	"astrograph/internal/web"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
)

const defaultPort = 8080

func newServeCmd(flags *renderFlags) *cobra.Command {
	var port int

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview the chart in a browser",
		Long: `Starts an HTTP server that renders the configured chart on every request,
so edits to the data or the imported YAML file show up on reload.

  /             interactive chart
  /chart.png    static image (also .svg, .jpg, .jpeg)
  /api/spec     plot data as JSON
  /api/config   resolved configuration as YAML`,
		Example: "  astrograph serve --import-config plot.yaml --port 9000",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			layer, err := flags.layer(cmd.Flags())
			if err != nil {
				return err
			}
			load := func() (*config.Config, *plotspec.PlotSpec, error) {
				cfg, err := config.Resolve(layer, flags.importConfig)
				if err != nil {
					return nil, nil, err
				}
				spec, err := plotspec.Load(cfg)
				return cfg, spec, err
			}
			// Fail fast on a broken configuration instead of on the first request.
			if _, _, err := load(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runWebServer(ctx, cmd, fmt.Sprintf(":%d", port), newRouter(load))
		},
	}
	serveCmd.Flags().IntVarP(&port, "port", "p", defaultPort, "port to listen on")
	return serveCmd
}

func newRouter(load api.Loader) *mux.Router {
	router := mux.NewRouter()

	// Register API routes
	api.RegisterChartRoutes(router, load)

	// Serve the chart page's script and stylesheet for pages that link them
	staticFileServer := http.StripPrefix("/assets/", http.FileServer(web.GetFileSystem()))
	router.PathPrefix("/assets/").Handler(staticFileServer)
	return router
}

// runWebServer serves handler on addr until ctx is cancelled.
func runWebServer(ctx context.Context, cmd *cobra.Command, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	statusColor.Fprintf(cmd.OutOrStdout(), "Serving chart preview on http://localhost%s\n", addr)
	logger.Info("Preview server started", "addr", addr)

	select {
	case err := <-errCh:
		return fmt.Errorf("web server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info("Preview server stopped")
	return nil
}
