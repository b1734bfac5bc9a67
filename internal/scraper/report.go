package scraper

import (
	"fmt"
	"strings"

	"github.com/orgball2608/subscraper/pkg/formatter"
)

// Summary renders reports as a MarkdownV2 Telegram message.
func Summary(reports []*ScrapeReport, err error) string {
	var sb strings.Builder
	sb.WriteString("*Scrape finished*\n")
	for _, r := range reports {
		line := fmt.Sprintf("%s: %s posts, %s media, %s linked",
			r.Username, formatter.FormatNumber(r.Posts), formatter.FormatNumber(r.Media), formatter.FormatNumber(r.Linked))
		if len(r.FailedFetches) > 0 {
			line += fmt.Sprintf(" (failed: %s)", strings.Join(r.FailedFetches, ", "))
		}
		sb.WriteString(formatter.EscapeMarkdownV2(line))
		sb.WriteString("\n")
	}
	if err != nil {
		sb.WriteString(formatter.EscapeMarkdownV2("Errors: " + err.Error()))
		sb.WriteString("\n")
	}
	return sb.String()
}

// MassMessageSummary renders a mass message reconciliation run as a MarkdownV2 Telegram message.
func MassMessageSummary(found int, err error) string {
	var sb strings.Builder
	sb.WriteString("*Mass messages reconciled*\n")
	if err != nil {
		sb.WriteString(formatter.EscapeMarkdownV2("Errors: " + err.Error()))
		sb.WriteString("\n")
		return sb.String()
	}
	sb.WriteString(formatter.EscapeMarkdownV2(formatter.FormatNumber(found) + " found"))
	sb.WriteString("\n")
	return sb.String()
}
