package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	v1 "github.com/halalflow/backend/internal/controllers/v1"
	"github.com/halalflow/backend/internal/ledger"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var errFormatUnknown = errors.New("unknown export format, use one of json, csv, xlsx")

func (a *app) exportCommand() *cobra.Command {
	var output, format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all data",
		Long:  "Export all data as JSON or the transactions as CSV or XLSX. The export is written to stdout unless --output is set.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			write, err := exporter(format, a.version)
			if err != nil {
				return err
			}

			engine, closeLedger, err := a.openLedger()
			if err != nil {
				return err
			}
			defer closeLedger()

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("could not create export file: %w", err)
				}
				defer f.Close()
				w = f
			}

			err = write(cmd, engine, w)
			if err != nil {
				return err
			}

			if output != "" {
				log.Info().Str("file", output).Str("format", format).Msg("Export")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "File to write the export to")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Export format: json, csv or xlsx")

	return cmd
}

type exportFunc func(*cobra.Command, *ledger.Engine, io.Writer) error

func exporter(format, version string) (exportFunc, error) {
	switch format {
	case "json":
		return func(cmd *cobra.Command, engine *ledger.Engine, w io.Writer) error {
			export, err := engine.Export(cmd.Context(), version)
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(w)
			encoder.SetIndent("", "  ")
			return encoder.Encode(v1.ExportResponse{
				Version:      export.Version,
				Data:         export.Data,
				CreationTime: export.CreationTime,
				Clacks:       "GNU Terry Pratchett",
			})
		}, nil
	case "csv":
		return func(cmd *cobra.Command, engine *ledger.Engine, w io.Writer) error {
			return engine.WriteTransactionsCSV(cmd.Context(), w)
		}, nil
	case "xlsx":
		return func(cmd *cobra.Command, engine *ledger.Engine, w io.Writer) error {
			return engine.WriteTransactionsXLSX(cmd.Context(), w)
		}, nil
	}

	return nil, fmt.Errorf("%w: %s", errFormatUnknown, format)
}
