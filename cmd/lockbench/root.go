package main

import (
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/NetPo4ki/go-thread/internal/log"
	"github.com/NetPo4ki/go-thread/thread"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "lockbench",
		Short:         "Exercise go-thread locks and managed threads.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log_format", "text", "Set the log format (text, logfmt, json)")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		flags := cc.Flags()

		var merr error

		logLevel, err := flags.GetString("log_level")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		logFormat, err := flags.GetString("log_format")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		if merr != nil {
			return fmt.Errorf("invalid argument: %w", merr)
		}

		h, err := log.CreateHandler(cc.ErrOrStderr(), logLevel, logFormat)
		if err != nil {
			return fmt.Errorf("failed creating log handler: %w", err)
		}
		logger := slog.New(h)
		slog.SetDefault(logger)
		thread.SetLogger(logger)

		return nil
	}

	cmd.AddCommand(NewContendCmd())
	cmd.AddCommand(NewHandshakeCmd())

	return cmd
}
