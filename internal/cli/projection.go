package cli

import (
	"github.com/halalflow/backend/internal/ledger"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func (a *app) projectionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "projection",
		Short: "Print the balance projection for the next 12 months",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, closeLedger, err := a.openLedger()
			if err != nil {
				return err
			}
			defer closeLedger()

			entries, err := engine.Projection(cmd.Context())
			if err != nil {
				return err
			}

			printProjection(message.NewPrinter(language.French), cmd, entries)
			return nil
		},
	}
}

func printProjection(p *message.Printer, cmd *cobra.Command, entries []ledger.ProjectionEntry) {
	w := cmd.OutOrStdout()

	p.Fprintf(w, "%-10s %16s %16s\n", "Mois", "Réel", "Potentiel")
	for _, e := range entries {
		p.Fprintf(w, "%-10s %16.2f %16.2f\n",
			e.Name+" "+e.Month.Time().Format("06"),
			e.RealBalance.InexactFloat64(),
			e.PotentialBalance.InexactFloat64(),
		)
	}
}
