package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"coingen/internal/fetcher"
	"coingen/internal/pipeline"
)

var (
	previewInput string
	previewLimit int
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Run the pipeline and print a summary without writing the table",
	Example: `  coingen preview
  coingen preview --input testdata/slip-0044.md --limit 40`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			return fmt.Errorf("configuration not loaded")
		}

		opts, err := pipelineOptions()
		if err != nil {
			return err
		}

		var doc string
		if previewInput != "" {
			data, err := os.ReadFile(previewInput)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			doc = string(data)
		} else {
			ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(cfg.HTTPTimeoutSeconds)*time.Second)
			defer cancel()

			f := fetcher.NewDocumentFetcher(cfg.SourceURL)
			doc, err = f.Fetch(ctx)
			if err != nil {
				return fmt.Errorf("fetch registry: %w", err)
			}
		}

		records, stats := pipeline.Run(doc, opts)
		sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })

		fmt.Printf("Coins: %d\n", len(records))
		fmt.Printf("Rows accepted: %d, skipped: %d (shape %d, name %d, id %d)\n",
			stats.RowsAccepted, stats.RowsSkipped, stats.SkippedShape, stats.SkippedName, stats.SkippedID)
		fmt.Printf("Registrations merged: %d, names disambiguated: %d\n",
			stats.IdentityMerge, stats.Collisions)

		limit := previewLimit
		if limit <= 0 || limit > len(records) {
			limit = len(records)
		}
		for _, rec := range records[:limit] {
			sym := rec.Symbol
			if sym == "" {
				sym = "-"
			}
			fmt.Printf("  %8d  %-32s %-10s %s\n", rec.ID, rec.Name, sym, rec.OriginalName)
		}
		if limit < len(records) {
			fmt.Printf("  ... and %d more\n", len(records)-limit)
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().StringVar(&previewInput, "input", "", "read the registry from a local file instead of fetching")
	previewCmd.Flags().IntVar(&previewLimit, "limit", 20, "number of coins to print (0 for all)")
	rootCmd.AddCommand(previewCmd)
}
