package cli

import (
	"context"

	"github.com/orgball2608/subscraper/internal/app"
	"github.com/orgball2608/subscraper/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the schedules, the operator bot and the health server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logger.New(logger.Opts{})

	application := fx.New(
		fx.Logger(log),
		app.Serve,
	)

	// Start the application
	if err := application.Start(context.Background()); err != nil {
		log.Error("Failed to start application", "error", err)
		return err
	}

	// Wait for interrupt signal
	ctx, stop := signalContext()
	defer stop()
	<-ctx.Done()

	// Gracefully shutdown the application
	if err := application.Stop(context.Background()); err != nil {
		log.Error("Failed to stop application", "error", err)
		return err
	}
	return nil
}
