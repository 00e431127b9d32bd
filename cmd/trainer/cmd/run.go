package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	trainer "github.com/Diavel78/product-trainer"
	"github.com/Diavel78/product-trainer/internal/config"
	"github.com/Diavel78/product-trainer/internal/sources"
	"github.com/Diavel78/product-trainer/internal/transport"
	"github.com/Diavel78/product-trainer/pkg/constants"
	"github.com/Diavel78/product-trainer/pkg/errors"
	"github.com/Diavel78/product-trainer/pkg/feeds"
)

var (
	inventoryLocation string
	googleLocation    string
	facebookLocation  string
	snapshotPath      string
	outputFormat      string
	outputPath        string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch all feeds and produce the daily inventory report",
	Long: `Run fetches the website inventory feed plus any configured advertising
feeds, normalizes them, and writes the report. Feed locations may be
http(s) URLs or local file paths.

The inventory feed is required. Advertising feeds are optional; when one
is missing or unreachable its audit section is simply empty.`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&inventoryLocation, "inventory", "", "inventory feed URL or file (env: FEED_INVENTORY)")
	runCmd.Flags().StringVar(&googleLocation, "google", "", "Google Vehicle Ads feed URL or file (env: FEED_GOOGLE)")
	runCmd.Flags().StringVar(&facebookLocation, "facebook", "", "Facebook product feed URL or file (env: FEED_FACEBOOK)")
	runCmd.Flags().StringVar(&snapshotPath, "snapshot", "data/inventory_snapshot.yaml", "snapshot file carried between runs")
	runCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, yaml, json)")
	runCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the report to a file instead of stdout")
}

func runReport(cmd *cobra.Command, _ []string) error {
	locations := map[feeds.ID]string{
		feeds.InventoryID: location(inventoryLocation, "FEED_INVENTORY"),
		feeds.GoogleAdsID: location(googleLocation, "FEED_GOOGLE"),
		feeds.FacebookID:  location(facebookLocation, "FEED_FACEBOOK"),
	}
	if locations[feeds.InventoryID] == "" {
		return errors.NewConfigError("run", "no inventory feed configured, set --inventory or FEED_INVENTORY", nil)
	}

	client := transport.New()
	opts := []trainer.Option{
		trainer.WithSnapshotPath(snapshotPath),
	}
	for id, loc := range locations {
		if loc == "" {
			continue
		}
		opts = append(opts, trainer.WithSource(sources.FromLocation(id, loc, client)))
	}

	t, err := trainer.New(opts...)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), constants.RunTimeout)
	defer cancel()

	report, err := t.Run(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return errors.WrapIO("create", outputPath, err)
		}
		defer func() { _ = file.Close() }()
		out = file
	}

	switch outputFormat {
	case "yaml":
		return report.WriteYAML(out)
	case "json":
		return report.WriteJSON(out)
	case "text":
		return writeText(out, report)
	default:
		return fmt.Errorf("unknown output format: %s", outputFormat)
	}
}

// location resolves a feed location from its flag, falling back to the
// config/env key.
func location(flagValue, key string) string {
	if flagValue != "" {
		return flagValue
	}
	return config.GetString(key)
}
