// Package cli implements the reclaim command-line interface. All
// printing and prompting lives here; the core packages never touch
// the terminal.
package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Ning0612/reclaim/internal/config"
	"github.com/Ning0612/reclaim/internal/logger"
)

// App wires configuration and shared services into the commands.
type App struct {
	cfg *config.Config

	// flags
	configPath string
	logLevel   string
}

// NewRootCmd builds the reclaim command tree.
func NewRootCmd(version string) *cobra.Command {
	app := &App{}

	root := &cobra.Command{
		Use:     "reclaim",
		Short:   "Analyze and reclaim disk space",
		Version: version,
		Long: heredoc.Doc(`
			reclaim walks a directory tree and reports where disk space is
			going: oversized files, byte-identical duplicates, files untouched
			for months, and well-known build or package caches. Nothing is
			deleted without an explicit confirmation.
		`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(app.configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if app.logLevel != "" {
				cfg.Log.Level = app.logLevel
			}
			app.cfg = cfg

			logCfg := logger.Config{
				Level:  logger.ParseLevel(cfg.Log.Level),
				Format: logger.ParseFormat(cfg.Log.Format),
			}
			if cfg.Log.File != "" {
				logCfg.File = logger.FileConfig{
					Enabled:    true,
					Path:       cfg.Log.File,
					MaxSizeMB:  10,
					MaxBackups: 3,
				}
			}
			return logger.Init(logCfg)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Shutdown()
		},
	}

	root.PersistentFlags().StringVarP(&app.configPath, "config", "c", "", "Config file path")
	root.PersistentFlags().StringVar(&app.logLevel, "log-level", "", "Override log level (debug, info, warn, error)")

	root.AddCommand(
		app.newAnalyzeCmd(),
		app.newCleanCmd(),
		app.newDockerCmd(),
		app.newHistoryCmd(),
	)

	return root
}
