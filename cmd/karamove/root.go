package main

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"karamove/internal/logging"
	"karamove/internal/services"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var logFormatFlag string

	ctx := newCommandContext(&configFlag, &logLevelFlag, &logFormatFlag)

	rootCmd := &cobra.Command{
		Use:           "karamove",
		Short:         "Karamove roster and music tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}
			logger, err := ctx.ensureLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			runCtx := services.WithRunID(cmd.Context(), uuid.NewString())
			runCtx = services.WithCommand(runCtx, cmd.Name())
			cmd.SetContext(runCtx)

			logging.WithContext(runCtx, logger).Debug("command started",
				logging.String("config_path", ctx.configPath),
				logging.Bool("config_exists", ctx.configExists),
			)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	flags.StringVar(&logLevelFlag, "log-level", "", "Log level override (debug, info, warn, error)")
	flags.StringVar(&logFormatFlag, "log-format", "", "Log format override (console, json)")

	rootCmd.AddCommand(newOutputJSONCommand(ctx))
	rootCmd.AddCommand(newMusicSegmentsCommand(ctx))
	rootCmd.AddCommand(newMusicInfoCommand(ctx))
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	for _, sub := range rootCmd.Commands() {
		logFailures(ctx, sub)
	}

	return rootCmd
}

// logFailures wraps every runnable command under cmd so failures are recorded
// with their error kind. main prints the message itself.
func logFailures(ctx *commandContext, cmd *cobra.Command) {
	for _, sub := range cmd.Commands() {
		logFailures(ctx, sub)
	}
	run := cmd.RunE
	if run == nil {
		return
	}
	cmd.RunE = func(c *cobra.Command, args []string) error {
		err := run(c, args)
		if err == nil || errors.Is(err, context.Canceled) || shouldSkipConfig(c) {
			return err
		}
		logging.WithContext(c.Context(), ctx.loggerFor(c)).Debug("command failed",
			logging.String(logging.FieldEventType, "command_failed"),
			logging.String(logging.FieldErrorKind, services.Kind(err)),
			logging.Error(err),
		)
		return err
	}
}
