package main

import (
	"context"
	"log/slog"

	"github.com/fwojciec/stepwise"
	"github.com/spf13/cobra"
)

type outputOptions struct {
	json  bool
	width int
}

func (o *outputOptions) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.json, "json", false, "Print JSON lines instead of rendered steps")
	cmd.Flags().IntVar(&o.width, "width", 100, "Wrap width for rendered steps")
}

func newStreamCmd(opts *options, env environment) *cobra.Command {
	out := &outputOptions{}
	cmd := &cobra.Command{
		Use:   "stream QUERY",
		Short: "Print agent steps as they arrive",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, client, cleanup, err := setup(cmd, opts, env, false)
			if err != nil {
				return err
			}
			defer cleanup()
			p := newPrinter(cmd.OutOrStdout(), out.json, out.width)
			return streamQuery(cmd.Context(), client, cfg, logger, p, queryArg(args))
		},
	}
	out.register(cmd)
	return cmd
}

// streamQuery runs one session through a Controller and prints its events
// until the session ends or ctx is cancelled.
func streamQuery(ctx context.Context, client stepwise.Client, cfg stepwise.Config, logger *slog.Logger, p *printer, query string) error {
	done := make(chan error, 1)
	handler := func(e stepwise.Event) {
		switch e := e.(type) {
		case stepwise.EventMessage:
			p.message(e.Session, e.Message)
		case stepwise.EventCompleted:
			p.outcome(e.Session, stepwise.StatusCompleted, nil)
			done <- nil
		case stepwise.EventFailed:
			p.outcome(e.Session, stepwise.StatusFailed, e.Err)
			done <- e.Err
		}
	}

	ctrl := stepwise.NewController(client, handler,
		stepwise.WithRequestDefaults(cfg.Request()),
		stepwise.WithIdleTimeout(cfg.IdleTimeout),
		stepwise.WithLogger(logger),
	)
	defer ctrl.Close()
	ctrl.Submit(query)

	select {
	case err := <-done:
		if err != nil {
			return err
		}
		return p.err
	case <-ctx.Done():
		ctrl.Cancel()
		return ctx.Err()
	}
}
