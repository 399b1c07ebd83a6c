package main

import (
	"context"

	"bundle-cli/internal/application"
	"bundle-cli/internal/application/config"
	"bundle-cli/internal/application/version"
	"bundle-cli/pkg/log"

	"github.com/spf13/cobra"
)

var (
	bundleRoot string
	logLevel   string
	logFormat  string
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bundle-cli",
		Short: "Manage the microservices, micro frontends and API claims of a bundle",
		Long: `bundle-cli keeps the bundle descriptor (entando.json), the component
directories and the runtime configuration of micro frontends consistent.`,
		Version:       version.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Configure(log.Options{Level: logLevel, Format: logFormat})
		},
	}

	rootCmd.PersistentFlags().StringVar(&bundleRoot, "bundle-root", "", "Bundle root directory (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", log.FormatText, "Log format (text, json)")

	rootCmd.AddCommand(
		newMicroserviceCmd(),
		newMicroFrontendCmd(),
		newApiCmd(),
		newServiceCmd(),
		newInfoCmd(),
		newValidateCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// openBundle loads the configuration and wires the bundle for one command.
func openBundle(ctx context.Context) (*application.Bundle, error) {
	cfg, err := config.LoadConfig(bundleRoot, logLevel)
	if err != nil {
		return nil, err
	}
	return application.NewBundle(ctx, cfg)
}
