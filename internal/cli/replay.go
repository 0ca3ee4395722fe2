package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newReplayCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "replay [file]",
		Short: "Replay a get/set script from a file or stdin",
		Long: "Replay a script of operations, one per line:\n\n" +
			"  set <key> <value>\n  get <key>\n  status\n\n" +
			"With no file, or with \"-\", the script is read from stdin.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var src io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer f.Close()
				src = f
			}
			return runScript(cmd.Context(), e, e.cfg.Capacity, src, cmd.OutOrStdout())
		},
	}
}
