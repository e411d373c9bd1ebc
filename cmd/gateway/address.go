package main

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/chainsafe/token-gateway/pkg/app/api"
	"github.com/chainsafe/token-gateway/pkg/auth"
	"github.com/chainsafe/token-gateway/pkg/gateway"
	"github.com/chainsafe/token-gateway/pkg/l2"
)

func addressCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "address <l1-token>",
		Short: "Print the L2 addresses an L1 token maps to",
		Long: "Print the standard and intermediate addresses of an L1 token. " +
			"The addresses only depend on the configured genesis, so no journal is needed.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !auth.ValidateEVMAddress(args[0]) {
				return fmt.Errorf("invalid L1 token address %q", args[0])
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			rt, err := api.NewRuntime(&cfg.Gateway)
			if err != nil {
				return err
			}

			var addrs *gateway.Addresses
			err = rt.View(func(txn *l2.Txn) error {
				a, err := gateway.Lookup(txn, cfg.Gateway.GatewayAddress(), common.HexToAddress(args[0]))
				addrs = a
				return err
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "standard:     %s\n", addrs.Standard.Hex())
			fmt.Fprintf(out, "intermediate: %s\n", addrs.Intermediate.Hex())
			return nil
		},
	}
}
