package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kenneth-bframe/fusion-dashboards/internal/profile"
	"github.com/kenneth-bframe/fusion-dashboards/internal/server"
	"github.com/kenneth-bframe/fusion-dashboards/internal/site"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the dashboard over HTTP",
	Long: `The serve command starts a web server rendering the company listing at /
and per-company detail pages at /companies/<key>. Profile files are read
fresh on every request, so edits show up without a restart.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(parent context.Context) error {
	tm, err := site.Load(appConfig.LayoutsDir)
	if err != nil {
		return fmt.Errorf("loading layouts: %w", err)
	}

	store := &profile.Store{Dir: appConfig.ProfilesDir, AssetDir: appConfig.AssetsDir}
	// Fail fast on an unreadable profile directory instead of 500ing on
	// the first request.
	if _, err := store.List(); err != nil {
		return err
	}

	port := appConfig.Port
	if servePort > 0 {
		port = servePort
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           server.New(appConfig, logger, store, tm).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("serving dashboard", "addr", srv.Addr, "profiles", appConfig.ProfilesDir)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to serve on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
