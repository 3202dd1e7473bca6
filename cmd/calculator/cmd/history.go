package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calculator/internal/history"
)

func newHistoryCmd(o *rootOptions) *cobra.Command {
	var (
		limit    int
		clearAll bool
		asJSON   bool
	)
	c := &cobra.Command{
		Use:   "history",
		Short: "Show recorded calculations",
		Long: `Show the most recent recorded calculations, newest first.

Calculations are recorded when --history is given or history is enabled in
the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := o.setup(cmd)
			if err != nil {
				return err
			}
			store, err := history.Open(history.Config{Path: e.cfg.History.Path})
			if err != nil {
				return fmt.Errorf("opening history: %w", err)
			}
			defer store.Close()
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if clearAll {
				n, err := store.Clear(ctx)
				if err != nil {
					return err
				}
				e.log.Info("history cleared", "entries", n)
				fmt.Fprintf(out, "cleared %d entries\n", n)
				return nil
			}

			if !cmd.Flags().Changed("limit") {
				limit = e.cfg.History.Limit
			}
			entries, err := store.Recent(ctx, limit)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if entries == nil {
					entries = []*history.Entry{}
				}
				return enc.Encode(entries)
			}
			for _, h := range entries {
				ts := h.Time.Format("2006-01-02 15:04:05")
				if h.Failed() {
					fmt.Fprintf(out, "%s  %s : %s\n", ts, h.Expression, h.Error)
					continue
				}
				fmt.Fprintf(out, "%s  %s = %s\n", ts, h.Expression, h.Result)
			}
			return nil
		},
	}
	c.Flags().IntVar(&limit, "limit", 20, "number of entries to show (0 for all)")
	c.Flags().BoolVar(&clearAll, "clear", false, "delete all recorded calculations")
	c.Flags().BoolVar(&asJSON, "json", false, "print entries as JSON")
	return c
}
