package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fwojciec/stepwise"
	"github.com/fwojciec/stepwise/biomni"
	"github.com/spf13/cobra"
)

// options holds the flag values shared by all subcommands.
type options struct {
	configPath     string
	baseURL        string
	llm            string
	idleTimeout    time.Duration
	temperature    float64
	timeoutSeconds int
	toolRetriever  bool
	commercialMode bool
	dataPath       string
	dropPartial    bool
	verbose        bool
	logFile        string
}

func newRootCmd(env environment) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "stepwise",
		Short: "Stream step-by-step progress of a Biomni agent",
		Long: `Stepwise submits queries to a Biomni agent server and shows each
thought, code cell, observation and solution as the agent produces it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts, env)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&opts.configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/stepwise/config.yaml)")
	f.StringVar(&opts.baseURL, "base-url", "", "Agent server URL (default: http://localhost:8000)")
	f.StringVar(&opts.llm, "llm", "", "Model selector sent with each query (default: "+stepwise.DefaultLLM+")")
	f.DurationVar(&opts.idleTimeout, "idle-timeout", 0, "Fail a session when no frame arrives for this long (default: 10m)")
	f.Float64Var(&opts.temperature, "temperature", 0, "Sampling temperature in [0, 2]")
	f.IntVar(&opts.timeoutSeconds, "timeout-seconds", 0, "Code execution timeout on the server")
	f.BoolVar(&opts.toolRetriever, "tool-retriever", true, "Let the agent select tools by retrieval")
	f.BoolVar(&opts.commercialMode, "commercial-mode", false, "Restrict the agent to commercially licensed resources")
	f.StringVar(&opts.dataPath, "data-path", "", "Data lake path on the server")
	f.BoolVar(&opts.dropPartial, "drop-partial", false, "Hide the steps of a failed session")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	f.StringVar(&opts.logFile, "log-file", "", "Write logs to this file instead of stderr")

	root.AddCommand(
		&cobra.Command{
			Use:   "tui",
			Short: "Interactive session (default)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runTUI(cmd, opts, env)
			},
		},
		newStreamCmd(opts, env),
		newRunCmd(opts, env),
		newHealthCmd(opts, env),
	)
	return root
}

// setup resolves configuration and builds the logger and client for a
// subcommand. The returned cleanup closes the log file, if any.
func setup(cmd *cobra.Command, opts *options, env environment, interactive bool) (stepwise.Config, *slog.Logger, *biomni.Client, func(), error) {
	cfg, err := resolveConfig(cmd, opts, env)
	if err != nil {
		return stepwise.Config{}, nil, nil, nil, err
	}

	// The TUI owns the terminal, so it logs only to a file.
	var logOut io.Writer = cmd.ErrOrStderr()
	if interactive {
		logOut = io.Discard
	}
	cleanup := func() {}
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return stepwise.Config{}, nil, nil, nil, fmt.Errorf("open log file: %w", err)
		}
		logOut = f
		cleanup = func() { f.Close() }
	}
	logger := newLogger(logOut, opts.verbose)

	clientOpts := []biomni.Option{biomni.WithLogger(logger)}
	if cfg.BaseURL != "" {
		clientOpts = append(clientOpts, biomni.WithBaseURL(cfg.BaseURL))
	}
	logger.Debug("configuration resolved", "base_url", cfg.BaseURL, "llm", cfg.LLM, "idle_timeout", cfg.IdleTimeout)
	return cfg, logger, biomni.New(clientOpts...), cleanup, nil
}

// newLogger creates a text logger at warn level, or debug when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if w == io.Discard {
		return slog.New(slog.DiscardHandler)
	}
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// queryArg joins positional arguments into one query.
func queryArg(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
