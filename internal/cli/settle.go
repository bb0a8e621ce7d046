package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func (a *app) settleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "settle <balance>",
		Short: "Confirm the monthly settlement with the real balance",
		Long: `Compares the reported balance with the recorded one and records an adjustment transaction for the difference.

Negative balances must follow "--" so that they are not parsed as flags:

  halalflow settle -- -20.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reported, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid balance %q: %w", args[0], err)
			}

			engine, closeLedger, err := a.openLedger()
			if err != nil {
				return err
			}
			defer closeLedger()

			result, err := engine.ConfirmSettlement(cmd.Context(), reported)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if !result.Adjusted {
				fmt.Fprintf(w, "Balance confirmed: %s\n", result.Settings.Balance.StringFixed(2))
				return nil
			}

			fmt.Fprintf(w, "Adjusted by %s, new balance: %s\n", result.Difference.StringFixed(2), result.Settings.Balance.StringFixed(2))
			return nil
		},
	}
}
