package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calculator/internal/tui"
)

func newTUICmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive calculator",
		Long: `Start the interactive terminal calculator.

Keys:
  Enter      - Evaluate
  Alt+Enter  - New line (also Ctrl+J)
  Ctrl+L     - Clear
  Esc        - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := o.setup(cmd)
			if err != nil {
				return err
			}
			store, err := o.openHistory(e)
			if err != nil {
				return err
			}
			// No logger: logs would draw over the screen.
			cfg := tui.Config{Options: e.opts}
			if store != nil {
				defer store.Close()
				cfg.Recorder = store
			}
			return tui.Run(cfg)
		},
	}
}
