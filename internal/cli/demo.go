package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"lrucache/internal/replay"
)

func newDemoCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in demonstration script",
		Long: "Run the built-in demonstration script. It starts from an empty cache, inserts a, b, c and d,\n" +
			"and reads every key after each insert. Use --capacity below 4 to see evictions.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd.Context(), e, e.cfg.Capacity, strings.NewReader(replay.DemoScript), cmd.OutOrStdout())
		},
	}
}
