package cli

import (
	"context"
	"strconv"
	"time"

	"cardpick/internal/store"

	"github.com/spf13/cobra"
)

type historyRows []store.ExportEntry

func (hs historyRows) Rows() [][]string {
	out := make([][]string, 0, len(hs))
	for _, h := range hs {
		out = append(out, []string{
			h.ExportedAt.Local().Format(time.DateTime),
			strconv.Itoa(h.Count) + "/" + strconv.Itoa(h.Total),
			h.Dest,
		})
	}
	return out
}

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previous exports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := store.OpenHistory()
			if err != nil {
				return writeErr(cmd, err)
			}
			entries, err := h.List(context.Background(), limit)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, historyRows(entries), nil)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of entries (0 = all)")
	return cmd
}
