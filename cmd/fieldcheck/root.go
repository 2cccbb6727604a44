package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/field"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// app is the state shared by subcommands once flags and environment are read.
type app struct {
	envFiles  []string
	logLevel  string
	logFormat string

	cfgOpts  []config.Option
	cfg      field.Config
	log      *slog.Logger
	registry *field.Registry
}

// newRootCmd builds the command tree. opts are passed to field.LoadConfig.
func newRootCmd(opts ...config.Option) *cobra.Command {
	a := &app{cfgOpts: opts}
	cmd := &cobra.Command{
		Use:   "fieldcheck",
		Short: "Inspect field types and validate values against a form schema",
		Long: `fieldcheck works with the form fields of formkit.

Commands:
  fieldcheck types                       List field types and the constraints they accept
  fieldcheck validate -s form.yaml k=v   Validate values against a schema document

Environment:
  FORMKIT_MONEY_PRECISION, FORMKIT_PASSWORD_POLICY, FORMKIT_LOG_LEVEL and the
  other FORMKIT_ variables set validator defaults. --env-file loads them from
  dotenv files first.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := cmd.PersistentFlags()
	flags.StringSliceVar(&a.envFiles, "env-file", nil, "dotenv files to load before reading FORMKIT_ variables")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", "", "log format (text, json)")

	cmd.AddCommand(newTypesCmd(a), newValidateCmd(a))
	return cmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if len(a.envFiles) > 0 {
		if err := config.LoadEnv(a.envFiles...); err != nil {
			return err
		}
	}

	cfg, err := field.LoadConfig(a.cfgOpts...)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cmd.Flags().Changed("log-level") {
		if _, ok := logger.ParseLevel(a.logLevel); !ok {
			return fmt.Errorf("unknown log level %q", a.logLevel)
		}
		cfg.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		switch logger.Format(a.logFormat) {
		case logger.FormatText, logger.FormatJSON:
		default:
			return fmt.Errorf("unknown log format %q", a.logFormat)
		}
		cfg.LogFormat = a.logFormat
	}

	a.cfg = cfg
	a.log = cfg.NewLogger(cmd.ErrOrStderr(), logger.WithAttr(logger.Component("fieldcheck")))
	a.registry = field.NewRegistry(field.WithConfig(cfg), field.WithLogger(a.log))
	return nil
}
