package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chromatic/internal/cli"
	"github.com/thenoetrevino/chromatic/internal/cli/scheme"
	"github.com/thenoetrevino/chromatic/internal/cli/styles"
	"github.com/thenoetrevino/chromatic/internal/config"
	"github.com/thenoetrevino/chromatic/internal/logging"
)

// NewRootCmd builds the chromatic command tree
func NewRootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	rootCmd := &cobra.Command{
		Use:   "chromatic",
		Short: "Chromatic - terminal color schemes",
		Long:  `Chromatic shows the default terminal color scheme and its key/value export.`,

		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				if errors.Is(err, config.ErrNotFound) {
					return cli.WithExitCode(cli.ExitNotFound, err)
				}
				return cli.WithExitCode(cli.ExitDataErr, err)
			}

			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}

			logger, logCloser, err := logging.Init(cfg.Log.Level, cfg.Log.File)
			if err != nil {
				err = fmt.Errorf("failed to initialize logging: %w", err)
				if errors.Is(err, logging.ErrInvalidLevel) {
					return cli.WithExitCode(cli.ExitUsage, err)
				}
				return cli.WithExitCode(cli.ExitError, err)
			}
			logger.Debug().
				Str("command", cmd.CommandPath()).
				Str("config", cfg.Path).
				Bool("no_color", cfg.Output.NoColor).
				Msg("starting")

			styles.Init(config.DefaultColorScheme(), cfg.Output.NoColor)
			cmd.SetContext(cli.WithCLI(cmd.Context(), cli.NewCLI(cfg, logger, logCloser)))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/chromatic/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cli.WithExitCode(cli.ExitUsage, err)
	})

	rootCmd.AddCommand(scheme.SchemeCmd())
	rootCmd.AddCommand(VersionCmd())

	return rootCmd
}

func Execute() error {
	return executeRoot(NewRootCmd())
}

// executeRoot runs root, releases the CLI context of the command that ran and,
// when that command was asked for --json, reports a failure in the JSON envelope.
func executeRoot(root *cobra.Command) error {
	cmd, err := root.ExecuteC()
	if cmd == nil {
		return err
	}

	if cliInstance, ctxErr := cli.GetCLIFromContext(cmd.Context()); ctxErr == nil {
		if closeErr := cliInstance.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}

	if err == nil || cli.IsReported(err) {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if !jsonOutput {
		return err
	}

	formatter := &cli.OutputFormatter{JSON: true, Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
	if fmtErr := formatter.Error(cli.ErrorCode(err), err.Error()); fmtErr != nil {
		return fmtErr
	}
	return cli.MarkReported(err)
}
