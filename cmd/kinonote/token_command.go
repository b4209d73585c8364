package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckTokenCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-token",
		Short: "Verify that the configured API token is accepted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.newClient()
			if err != nil {
				return err
			}
			if client.ValidateToken(cmd.Context()) {
				fmt.Fprintln(cmd.OutOrStdout(), "token ok")
				return nil
			}
			return fmt.Errorf("token rejected")
		},
	}
	return cmd
}
