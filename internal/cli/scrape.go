package cli

import (
	"encoding/json"
	"os"

	"github.com/orgball2608/subscraper/internal/scraper"
	"github.com/orgball2608/subscraper/internal/telegram"
	"github.com/orgball2608/subscraper/pkg/config"
	"github.com/spf13/cobra"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape [identifiers...]",
	Short: "Run one scrape pass and print the reports",
	Long:  "Scrapes the subscriptions matching the given usernames or ids, or PARSER_IDENTIFIERS when none are given.",
	RunE:  runScrape,
}

func init() {
	scrapeCmd.Flags().Bool("notify", false, "Send the run summary to Telegram")
	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, args []string) error {
	notify, _ := cmd.Flags().GetBool("notify")

	ctx, stop := signalContext()
	defer stop()

	var (
		s   scraper.Client
		cfg *config.Config
		n   telegram.Client
	)
	return withApp(ctx, func() error {
		identifiers := args
		if len(identifiers) == 0 {
			identifiers = cfg.Parser.Identifiers
		}

		reports, err := s.ScrapeAll(ctx, identifiers)
		if notify {
			n.SendMessageToUser(scraper.Summary(reports, err))
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(reports); encErr != nil {
			return encErr
		}
		return err
	}, &s, &cfg, &n)
}
