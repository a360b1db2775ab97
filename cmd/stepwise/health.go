package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCmd(opts *options, env environment) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the agent server is ready",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, client, cleanup, err := setup(cmd, opts, env, false)
			if err != nil {
				return err
			}
			defer cleanup()

			h, err := client.Health(cmd.Context())
			if err != nil {
				return err
			}
			logger.Debug("health check", "status", h.Status)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", h.Status, h.Message)
			if h.Status != "healthy" {
				return fmt.Errorf("server reports status %q", h.Status)
			}
			return nil
		},
	}
}
