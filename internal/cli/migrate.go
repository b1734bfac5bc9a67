package cli

import (
	"fmt"

	"github.com/orgball2608/subscraper/internal/db"
	"github.com/orgball2608/subscraper/pkg/config"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status|reset|version|redo] [args...]",
	Short:     "Run ledger database migrations",
	Args:      cobra.MinimumNArgs(1),
	ValidArgs: []string{"up", "down", "status", "reset", "version", "redo"},
	RunE:      runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	connect, dialect, err := db.Open(cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer connect.Close()

	ctx, stop := signalContext()
	defer stop()

	fmt.Fprintf(cmd.ErrOrStderr(), "Running migration %q on %s\n", args[0], cfg.Storage.Driver)
	if err := db.Migrate(ctx, connect, dialect, args[0], args[1:]...); err != nil {
		return fmt.Errorf("migration %s failed: %w", args[0], err)
	}
	return nil
}
