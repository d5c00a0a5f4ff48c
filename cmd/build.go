package cmd

import (
	"fmt"

	"product-builder/feature/products"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the build command
	dryRunBuild bool
	jsonBuild   bool
)

// buildCmd reconciles the pending barcodes into the product sheet.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build product rows from the pending barcodes",
	Long: `Reads the pending barcodes, queries every lookup backend and appends one merged
row per barcode to the product sheet.

Nothing is written unless every backend call succeeded.

Examples:
  # Build and write
  build

  # Resolve and merge only, print the report
  build --dry-run --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rt, err := setup(ctx)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		svc, err := rt.productService()
		if err != nil {
			return err
		}

		report, err := svc.Build(ctx, products.BuildOptions{DryRun: dryRunBuild})
		if err != nil {
			if report != nil {
				for _, f := range report.Failures {
					rt.logger.Warn("Failed call", zap.String("backend", f.Backend), zap.String("code", f.Code), zap.String("reason", f.Reason))
				}
			}
			return fmt.Errorf("build failed: %w", err)
		}

		if jsonBuild {
			return printJSON(report)
		}

		rt.logger.Info("Build report",
			zap.String("run_id", report.RunID),
			zap.Int("pending", report.Pending),
			zap.Int("resolved", report.Resolved),
			zap.Int("skipped", len(report.Skipped)),
			zap.Int("written", report.Written),
			zap.Bool("dry_run", report.DryRun),
			zap.String("duration", report.Duration),
		)
		for _, s := range report.Backends {
			rt.logger.Info("Backend summary",
				zap.String("backend", s.Backend),
				zap.Int("calls", s.Calls),
				zap.Int("matches", s.Matches),
			)
		}
		return nil
	},
}

func init() {
	buildCmd.Flags().BoolVar(&dryRunBuild, "dry-run", false, "Resolve and merge without writing the product sheet")
	buildCmd.Flags().BoolVar(&jsonBuild, "json", false, "Print the full report as JSON")
	RootCmd.AddCommand(buildCmd)
}
