package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/routefix/cmd/routefix/commands"
	"github.com/walteh/routefix/pkg/config"
	"github.com/walteh/routefix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	routesDir  string
	pattern    string
	debug      bool
	async      bool
)

// newRootCmd creates the root command. Running the binary with no subcommand
// performs the default fix run.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "routefix",
		Short: "A tool for fixing id parsing in request route handlers",
		Long: `routefix rewrites route source files that read the id path parameter
without validating it, inserting a parseInt conversion and an isNaN guard
that returns a 400 response. Files are only written back when the rewrite
actually changed their content.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(setupLogging(cmd.Context()))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFix(cmd.Context())
		},
	}

	addRootFlags(rootCmd)
	rootCmd.AddCommand(commands.NewFixCmd(newFixOpts))

	return rootCmd
}

// runFix performs the default fix run
func runFix(ctx context.Context) error {
	opts, err := newFixOpts(ctx)
	if err != nil {
		return errors.Errorf("initializing: %w", err)
	}
	return commands.RunFix(ctx, opts)
}

// newFixOpts loads the config and applies flag overrides
func newFixOpts(ctx context.Context) (*commands.RootOpts, error) {
	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	if routesDir != "" {
		cfg.RoutesDir = routesDir
	}
	if pattern != "" {
		cfg.Pattern = pattern
	}
	if async {
		cfg.Async = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return &commands.RootOpts{
		Config:     cfg,
		UserLogger: status.NewUserLogger(ctx),
		Console:    os.Stdout,
	}, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultConfigFile, "config file path")
	cmd.PersistentFlags().StringVar(&routesDir, "dir", "", "routes directory (overrides config)")
	cmd.PersistentFlags().StringVar(&pattern, "pattern", "", "file name pattern (overrides config)")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&async, "async", false, "run the operation asynchronously")
}

// setupLogging configures zerolog based on flags
func setupLogging(ctx context.Context) context.Context {
	logLevel := zerolog.InfoLevel
	if debug {
		logLevel = zerolog.DebugLevel
	}
	logger := zerolog.New(os.Stderr).Level(logLevel).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}
