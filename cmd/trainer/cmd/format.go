package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	trainer "github.com/Diavel78/product-trainer"
	"github.com/Diavel78/product-trainer/pkg/constants"
	"github.com/Diavel78/product-trainer/pkg/feeds"
)

var titleCaser = cases.Title(language.English)

// feedHeading renders a feed id as a section heading, e.g. "google_ads"
// becomes "Google Ads".
func feedHeading(id feeds.ID) string {
	return titleCaser.String(strings.ReplaceAll(id.String(), "_", " "))
}

// writeText renders the report in a plain console layout.
func writeText(w io.Writer, report *trainer.Report) error {
	fmt.Fprintf(w, "Inventory Report - %s\n", report.GeneratedAt.Format(constants.SnapshotDateFormat))
	fmt.Fprintf(w, "%d units (%d new, %d used)\n\n",
		report.Summary.Total, report.Summary.TotalNew, report.Summary.TotalUsed)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STORE\tNEW\tUSED\tTOTAL\tVALUE")
	for _, store := range report.Summary.Stores {
		stats := report.Summary.ByStore[store]
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t$%.0f\n",
			store.Label(), stats.New, stats.Used, stats.Total, stats.TotalValue)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tNEW\tUSED\tTOTAL")
	for _, category := range report.Summary.Categories {
		stats := report.Summary.ByCategory[category]
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", category, stats.New, stats.Used, stats.Total)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, id := range feeds.IDs() {
		issues := report.Issues[id]
		fmt.Fprintf(w, "\n%s Issues (%d)\n", feedHeading(id), len(issues))
		for _, issue := range issues {
			fmt.Fprintf(w, "  %s  %s [%s]\n", issue.Stock, issue.Title, issue.Store.Label())
			for _, problem := range issue.Problems {
				fmt.Fprintf(w, "    - %s\n", problem)
			}
		}
	}

	changes := report.Delta
	if changes.FirstRun {
		fmt.Fprintln(w, "\nFirst run, no prior snapshot to compare against.")
		return nil
	}

	fmt.Fprintf(w, "\nChanges since %s (%d)\n",
		changes.PreviousDate.Format(constants.SnapshotDateFormat), changes.Total())
	for _, entry := range changes.Added {
		fmt.Fprintf(w, "  + %s  %s [%s] $%.0f\n", entry.Stock, entry.Title, entry.Store.Label(), entry.Price)
	}
	for _, entry := range changes.Removed {
		fmt.Fprintf(w, "  - %s  %s [%s]\n", entry.Stock, entry.Title, entry.Store.Label())
	}
	for _, change := range changes.PriceChanges {
		fmt.Fprintf(w, "  ~ %s  %s $%.0f -> $%.0f (%+.0f)\n",
			change.Stock, change.Title, change.OldPrice, change.NewPrice, change.Change)
	}
	return nil
}
