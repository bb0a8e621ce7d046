// Package cli implements the halalflow command line.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/halalflow/backend/internal/config"
	"github.com/halalflow/backend/internal/ledger"
	"github.com/halalflow/backend/internal/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// app is the state shared by all commands. It is populated before any
// command runs.
type app struct {
	version string
	cfg     config.Config
}

// NewRootCommand returns the halalflow command with all subcommands.
func NewRootCommand(version string) *cobra.Command {
	a := &app{version: version}

	root := &cobra.Command{
		Use:           "halalflow",
		Short:         "Halal Flow budgeting ledger",
		Long:          "Halal Flow tracks a single balance, its transactions, savings goals, assets and planned operations.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg

			setupLogging(cfg, cmd.ErrOrStderr())
			return nil
		},
	}

	serve := a.serveCommand()
	root.RunE = serve.RunE

	root.AddCommand(serve)
	root.AddCommand(a.projectionCommand())
	root.AddCommand(a.exportCommand())
	root.AddCommand(a.settleCommand())

	return root
}

// Execute is the main entry point called from main.go.
func Execute(version string) {
	if err := NewRootCommand(version).Execute(); err != nil {
		log.Error().Err(err).Msg("halalflow")
		os.Exit(1)
	}
}

// setupLogging configures gin and the global zerolog logger.
//
// The log format can be explicitly set. If it is not set, it defaults to
// human readable for development and JSON for release.
func setupLogging(cfg config.Config, w io.Writer) {
	gin.SetMode(cfg.GinMode)

	output := w
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: w}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()
}

// openLedger connects to the configured database and returns the engine
// together with a function closing the connection.
func (a *app) openLedger() (*ledger.Engine, func(), error) {
	if a.cfg.UsesSQLite() {
		err := os.MkdirAll(a.cfg.DataDir, os.ModePerm)
		if err != nil {
			return nil, nil, fmt.Errorf("could not create data directory: %w", err)
		}
	}

	db, err := models.Connect(a.cfg.Dialector())
	if err != nil {
		return nil, nil, err
	}

	return ledger.New(db), func() { closeDB(db) }, nil
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error().Err(err).Msg("Database")
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("Database")
	}
}
