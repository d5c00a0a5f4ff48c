package cmd

import (
	"github.com/spf13/cobra"
)

// lookupCmd reconciles ad-hoc barcodes without touching any sheet.
var lookupCmd = &cobra.Command{
	Use:   "lookup [barcode...]",
	Short: "Look up barcodes across every backend",
	Long:  `Queries every lookup backend for the given barcodes and prints the merged records as JSON. No sheet is read or written.`,
	Args:  cobra.MinimumNArgs(1),
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

		records, err := svc.Lookup(ctx, args)
		if err != nil {
			return err
		}
		return printJSON(records)
	},
}

func init() {
	RootCmd.AddCommand(lookupCmd)
}
