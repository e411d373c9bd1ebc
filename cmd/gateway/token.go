package main

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/chainsafe/token-gateway/pkg/auth"
)

func tokenCommand() *cobra.Command {
	var (
		role string
		ttl  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token <caller>",
		Short: "Issue a bearer token for the counterpart relay or the operator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !auth.ValidateEVMAddress(args[0]) {
				return fmt.Errorf("invalid caller address %q", args[0])
			}
			r := auth.Role(role)
			if r != auth.RoleCounterpart && r != auth.RoleOperator {
				return fmt.Errorf("unknown role %q", role)
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			jwtv := auth.NewJWTValidator(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
			tok, err := jwtv.IssueToken(common.HexToAddress(args[0]), r, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "role", string(auth.RoleCounterpart), "role carried by the token (counterpart|operator)")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
