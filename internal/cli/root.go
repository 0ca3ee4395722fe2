// Package cli wires the lrucache command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"lrucache/internal/cache"
	"lrucache/internal/config"
	"lrucache/internal/logger"
	"lrucache/internal/replay"
)

// env holds what PersistentPreRunE resolved for the subcommands.
type env struct {
	cfg config.Config
	log *slog.Logger
}

func NewRootCommand() *cobra.Command {
	var (
		e    env
		opts config.Config
	)

	cmd := &cobra.Command{
		Use:           "lrucache",
		Short:         "Exercise a fixed-capacity LRU cache with scripted operations",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.IntVarP(&opts.Capacity, "capacity", "c", 0, "maximum number of entries (env LRU_CAPACITY)")
	flags.BoolVar(&opts.Verify, "verify", false, "check cache invariants after every operation (env LRU_VERIFY)")
	flags.StringVar(&opts.LogLevel, "log-level", "", "debug|info|warn|error (env LRU_LOG_LEVEL)")
	flags.StringVar(&opts.LogFormat, "log-format", "", "text|json (env LRU_LOG_FORMAT)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		f := cmd.Flags()
		if f.Changed("capacity") {
			cfg.Capacity = opts.Capacity
		}
		if f.Changed("verify") {
			cfg.Verify = opts.Verify
		}
		if f.Changed("log-level") {
			cfg.LogLevel = opts.LogLevel
		}
		if f.Changed("log-format") {
			cfg.LogFormat = opts.LogFormat
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		log, err := logger.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return err
		}

		e = env{cfg: cfg, log: log}
		return nil
	}

	cmd.AddCommand(newDemoCommand(&e))
	cmd.AddCommand(newReplayCommand(&e))
	return cmd
}

// runScript replays src against a fresh cache of the given capacity and prints a summary.
func runScript(ctx context.Context, e *env, capacity int, src io.Reader, out io.Writer) error {
	c, err := cache.New[string, string](capacity)
	if err != nil {
		return err
	}

	e.log.Debug("cache created", logger.Capacity(capacity))

	r := replay.NewRunner(c, out, replay.WithLogger(e.log), replay.WithVerify(e.cfg.Verify))
	st, err := r.Run(ctx, src)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "ops=%d sets=%d hits=%d misses=%d evictions=%d\n",
		st.Ops, st.Sets, st.Hits, st.Misses, st.Evictions)
	return err
}
