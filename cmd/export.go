package cmd

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kenneth-bframe/fusion-dashboards/internal/export"
)

var exportWatch bool

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exports the dashboard as static HTML",
	Long: `The export command renders the listing page and every company detail page
into the configured output directory, alongside copies of the static and
logo assets. With --watch it keeps running and re-exports whenever profiles,
layouts, or assets change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd.Context())
	},
}

func runExport(parent context.Context) error {
	exporter := export.New(appConfig, logger)
	if err := exporter.Run(); err != nil {
		return err
	}
	if !exportWatch {
		return nil
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := exporter.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func init() {
	exportCmd.Flags().BoolVarP(&exportWatch, "watch", "w", false, "Re-export on file changes")
	rootCmd.AddCommand(exportCmd)
}
