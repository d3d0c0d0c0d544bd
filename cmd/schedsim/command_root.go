package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/schedsim"
	"github.com/viant/schedsim/internal/logging"
	"github.com/viant/schedsim/tracing"
)

const version = "0.1.0"

// app holds the persistent flags and the service built from them.
type app struct {
	configURL string
	logLevel  string
	logFormat string
	trace     string
	service   *schedsim.Service
}

func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "schedsim",
		Short:         "CPU scheduling simulator and Banker's algorithm evaluator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return tracing.Shutdown(cmd.Context())
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.configURL, "config", "", "YAML configuration URL")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text or json")
	flags.StringVar(&a.trace, "trace", "", "write OpenTelemetry spans to the given file ('-' for stdout)")

	root.AddCommand(newSimulateCmd(a))
	root.AddCommand(newCompareCmd(a))
	root.AddCommand(newBankCmd(a))
	root.AddCommand(newGenerateCmd(a))
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	config, err := schedsim.LoadConfig(cmd.Context(), a.configURL)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		config.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		config.Log.Format = a.logFormat
	}
	if a.trace != "" {
		config.Tracing.Enabled = true
		config.Tracing.OutputFile = a.trace
	}
	if err = config.Validate(); err != nil {
		return err
	}
	logger := logging.New(config.Log.Level, config.Log.Format, cmd.ErrOrStderr())
	if config.Tracing.Enabled {
		outputFile := config.Tracing.OutputFile
		if outputFile == "-" {
			outputFile = ""
		}
		if err = tracing.Init(config.Tracing.ServiceName, version, outputFile); err != nil {
			return fmt.Errorf("failed to initialise tracing: %w", err)
		}
	}
	a.service = schedsim.New(schedsim.WithConfig(config), schedsim.WithLogger(logger))
	return nil
}

func (a *app) context(cmd *cobra.Command) context.Context {
	return a.service.NewContext(cmd.Context())
}
