package main

import (
	"fmt"

	"github.com/fwojciec/stepwise"
	bt "github.com/fwojciec/stepwise/bubbletea"
	"github.com/spf13/cobra"
)

func runTUI(cmd *cobra.Command, opts *options, env environment) error {
	cfg, logger, client, cleanup, err := setup(cmd, opts, env, true)
	if err != nil {
		return err
	}
	defer cleanup()

	inbox := bt.NewInbox()
	defer inbox.Close()
	ctrl := stepwise.NewController(client, inbox.Push,
		stepwise.WithRequestDefaults(cfg.Request()),
		stepwise.WithIdleTimeout(cfg.IdleTimeout),
		stepwise.WithLogger(logger),
	)
	defer ctrl.Close()

	m := bt.New(ctrl, inbox, stepwise.DefaultTheme(), bt.Config{DropPartialOnError: cfg.DropPartialOnError})
	if err := bt.Run(cmd.Context(), m); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}
