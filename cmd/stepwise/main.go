// Command stepwise streams the step-by-step progress of a Biomni agent run.
//
// Usage:
//
//	stepwise [tui]            interactive session (default)
//	stepwise stream QUERY     print steps as they arrive
//	stepwise run QUERY        run to completion, print all steps
//	stepwise health           check the agent server
//
// Settings come from flags, then STEPWISE_BASE_URL and STEPWISE_LLM, then
// the config file ($XDG_CONFIG_HOME/stepwise/config.yaml or --config).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Env vars are read here and passed as values.
	env := environment{
		BaseURL: os.Getenv("STEPWISE_BASE_URL"),
		LLM:     os.Getenv("STEPWISE_LLM"),
	}
	if err := newRootCmd(env).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "stepwise: %v\n", err)
		stop()
		os.Exit(1)
	}
}
