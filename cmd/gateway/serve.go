package main

import (
	"github.com/spf13/cobra"

	"github.com/chainsafe/token-gateway/pkg/app/api"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Replay the journal and serve the gateway API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return api.NewServer(cfg).Run()
		},
	}
}
