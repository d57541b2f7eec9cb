// Package cmd implements the wheel CLI commands.
package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/go-drift/wheel/cmd/wheel/internal/config"
	"github.com/go-drift/wheel/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// New returns the root command with every subcommand that runs without a
// window system attached.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wheel",
		Short: "Render, replay and try out the drum-style wheel picker.",
		Long: `wheel drives the wheel picker outside an app: it renders single frames to
PNG or WebP, replays scripted gestures against a simulated clock, and hosts
the date picker dialog in a terminal.

Settings come from an optional YAML or TOML file passed with --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().StringP("config", "c", "", "config file (.yaml, .yml or .toml)")
	cmd.PersistentFlags().Bool("debug", false, "log at debug level")

	AddCommands(cmd)
	return cmd
}

// AddCommands registers the subcommands on topLevel.
func AddCommands(topLevel *cobra.Command) {
	addRender(topLevel)
	addTrace(topLevel)
	addTUI(topLevel)
	addVersion(topLevel)
}

// Setup loads the config named by --config and installs a logger at the
// configured level as the error handler. --debug overrides the level.
func Setup(cmd *cobra.Command) (*config.Config, *log.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")

	cfg, err := config.LoadOptional(path)
	if err != nil {
		return nil, nil, err
	}

	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "wheel"})
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	if debug {
		level = log.DebugLevel
	}
	logger.SetLevel(level)

	handler := errors.NewLogHandler(logger)
	handler.Verbose = debug
	errors.SetHandler(handler)

	if path != "" {
		logger.Debug("config loaded", "path", path, "version", cfg.Version)
	}
	return cfg, logger, nil
}
