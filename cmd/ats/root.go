package main

import (
	"fmt"
	"strings"

	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/syslinkats/ats-harness/internal/config"
)

type rootOptions struct {
	configPath string
	logFormat  string
	logLevel   string
}

func (o *rootOptions) register(fs *pflag.FlagSet) {
	fs.StringVar(&o.configPath, "config", "", "path of the harness configuration file (json or yaml)")
	fs.StringVar(&o.logFormat, "log-format", "", "log format: console or json")
	fs.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn or error")
}

// NewRootCommand builds the ats command tree. Every flag can also be set
// through an ATS_ prefixed environment variable, e.g. ATS_LOG_LEVEL.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "ats",
		Short:         "SystemLink automated test harness",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: cobrautil.CommandStack(
			cobrautil.SyncViperPreRunE("ATS"),
			a.setup,
		),
		PersistentPostRunE: a.teardown,
	}
	a.opts.register(root.PersistentFlags())

	root.AddCommand(
		newInstancesCommand(a),
		newRemoteCommand(a),
		newProvisionCommand(a),
		newTestCommand(a),
		newReportCommand(a),
		newServeCommand(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.opts.configPath)
	if err != nil {
		return err
	}
	if a.opts.logFormat != "" {
		cfg.LogFormat = a.opts.logFormat
	}
	if a.opts.logLevel != "" {
		cfg.LogLevel = a.opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	logger, err := newLogger(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = logger
	zap.ReplaceGlobals(logger)

	zap.S().Named("ats").Debugw("configuration loaded", "command", cmd.CommandPath(), "config", cfg.DebugMap())
	return nil
}

func newLogger(format, level string) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if strings.EqualFold(format, "console") {
		zc = zap.NewDevelopmentConfig()
	}

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}
	zc.Level = lvl

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
