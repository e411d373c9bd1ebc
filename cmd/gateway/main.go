package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chainsafe/token-gateway/pkg/config"
)

const (
	configFlag    = "config"
	defaultConfig = "config.yaml"
	// EnvConfig overrides the default configuration path
	EnvConfig = "GATEWAY_CONFIG"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gateway",
		Short:         "Token gateway controller for the secondary domain",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	path := defaultConfig
	if v, ok := os.LookupEnv(EnvConfig); ok {
		path = v
	}
	cmd.PersistentFlags().String(configFlag, path, "path to the configuration file")

	cmd.AddCommand(
		serveCommand(),
		migrateCommand(),
		addressCommand(),
		tokenCommand(),
	)
	return cmd
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("error reading configuration file %s: %w", path, err)
	}
	return cfg, nil
}
