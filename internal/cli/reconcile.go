package cli

import (
	"fmt"

	"github.com/orgball2608/subscraper/internal/scraper"
	"github.com/spf13/cobra"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Match the mass message queue against the chat history cache",
	RunE:  runReconcile,
}

func init() {
	rootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext()
	defer stop()

	var s scraper.Client
	return withApp(ctx, func() error {
		found, err := s.ReconcileMassMessages(ctx)
		if err != nil {
			return fmt.Errorf("reconcile failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Mass messages reconciled: %d found\n", len(found))
		return nil
	}, &s)
}
