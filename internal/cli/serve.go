package cli

import (
	"fmt"

	v1 "github.com/halalflow/backend/internal/controllers/v1"
	"github.com/halalflow/backend/internal/router"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func (a *app) serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			engine, closeLedger, err := a.openLedger()
			if err != nil {
				return err
			}
			defer closeLedger()

			r, teardown, err := router.Config(a.cfg, a.version)
			defer teardown()
			if err != nil {
				return err
			}

			router.AttachRoutes(v1.Controller{Ledger: engine, Version: a.version}, r.Group("/"), a.cfg.EnablePprof)

			log.Info().Str("version", a.version).Int("port", a.cfg.Port).Str("url", a.cfg.APIURL.String()).Msg("Starting")
			return r.Run(fmt.Sprintf(":%d", a.cfg.Port))
		},
	}
}
