package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"coingen/internal/codegen"
	"coingen/internal/fetcher"
	"coingen/internal/pipeline"
)

var (
	genOutput  string
	genPackage string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Fetch the registry and write the generated coin table",
	Example: `  coingen generate
  coingen generate --output slip0044/coins_gen.go --package slip0044
  coingen generate --source-url http://localhost:8080/slip-0044.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			return fmt.Errorf("configuration not loaded")
		}
		if cmd.Flags().Changed("output") && genOutput != "" {
			cfg.OutputPath = genOutput
		}
		if cmd.Flags().Changed("package") && genPackage != "" {
			cfg.PackageName = genPackage
		}

		opts, err := pipelineOptions()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(cfg.HTTPTimeoutSeconds)*time.Second)
		defer cancel()

		f := fetcher.NewDocumentFetcher(cfg.SourceURL)
		fmt.Printf("Fetching %s...\n", f.Source())
		doc, err := f.Fetch(ctx)
		if err != nil {
			return fmt.Errorf("fetch registry: %w", err)
		}
		fmt.Printf("Fetched %d bytes\n", len(doc))

		records, stats := pipeline.Run(doc, opts)

		count, err := codegen.WriteFile(cfg.OutputPath, cfg.PackageName, records)
		if err != nil {
			return err
		}

		fmt.Printf("Wrote %d coins to %s (%d rows skipped, %d registrations merged)\n",
			count, cfg.OutputPath, stats.RowsSkipped, stats.IdentityMerge)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "output file path (overrides config)")
	generateCmd.Flags().StringVar(&genPackage, "package", "", "package name for the generated file (overrides config)")
	rootCmd.AddCommand(generateCmd)
}
