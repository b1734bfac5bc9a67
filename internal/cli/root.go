package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/orgball2608/subscraper/internal/app"
	"github.com/orgball2608/subscraper/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var rootCmd = &cobra.Command{
	Use:          "subscraper",
	Short:        "Subscription content scraper",
	Long:         "Scrapes subscription content into a path-resolved, deduplicated media index and keeps a media ledger.",
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

// withApp starts the client graph, runs fn with the populated targets and stops the graph.
func withApp(ctx context.Context, fn func() error, targets ...any) error {
	log := logger.New(logger.Opts{})

	application := fx.New(
		fx.Logger(log),
		app.Module,
		fx.Populate(targets...),
	)
	if err := application.Start(ctx); err != nil {
		return fmt.Errorf("failed to start application: %w", err)
	}

	runErr := fn()

	if err := application.Stop(context.Background()); err != nil {
		log.Error("Failed to stop application", "error", err)
	}
	return runErr
}
