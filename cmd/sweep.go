package cmd

import (
	"errors"

	"product-builder/feature/sessions"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// sweepCmd clears expired session tokens.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Clear expired session tokens",
	Long:  `Clears every row of the session sheet whose timestamp is older than the configured TTL. Fails when nothing has expired.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rt, err := setup(ctx)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		sweeper, err := rt.sweeper()
		if err != nil {
			return err
		}

		result, err := sweeper.Sweep(ctx)
		if errors.Is(err, sessions.ErrNothingExpired) {
			rt.logger.Info("No expired session tokens", zap.Int("scanned", result.Scanned))
			return err
		}
		if err != nil {
			return err
		}

		rt.logger.Info("Sweep completed", zap.Strings("ranges", result.Ranges))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(sweepCmd)
}
