package main

import (
	"context"

	"github.com/fwojciec/stepwise"
	"github.com/fwojciec/stepwise/biomni"
	"github.com/spf13/cobra"
)

func newRunCmd(opts *options, env environment) *cobra.Command {
	out := &outputOptions{}
	cmd := &cobra.Command{
		Use:   "run QUERY",
		Short: "Run the agent to completion and print all steps",
		Long: `Run uses the blocking endpoint: nothing is printed until the agent
finishes. Use stream to follow progress.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, client, cleanup, err := setup(cmd, opts, env, false)
			if err != nil {
				return err
			}
			defer cleanup()
			p := newPrinter(cmd.OutOrStdout(), out.json, out.width)
			return runQuery(cmd.Context(), client, cfg, p, queryArg(args))
		},
	}
	out.register(cmd)
	return cmd
}

func runQuery(ctx context.Context, client *biomni.Client, cfg stepwise.Config, p *printer, query string) error {
	req := stepwise.Request{Query: query}.WithDefaults(cfg.Request())
	result, err := client.Run(ctx, req)
	if err != nil {
		return err
	}
	for _, step := range result.Steps {
		if step.Message.IsEmpty() && step.Output != "" {
			// Steps without a recognised slot still carry the agent's raw output.
			p.message(0, stepwise.StepMessage{Observation: step.Output})
			continue
		}
		p.message(0, step.Message)
	}
	p.outcome(0, stepwise.StatusCompleted, nil)
	return p.err
}
