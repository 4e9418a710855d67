package cli

import (
	"context"
	"strings"
	"time"

	"cardpick/internal/export"
	"cardpick/internal/store"

	"github.com/spf13/cobra"
)

type exportOut struct {
	Exported int    `json:"exported"`
	IDs      []int  `json:"ids"`
	Path     string `json:"path"`
}

func newExportCmd(app *App) *cobra.Command {
	var (
		out       string
		sel       selectionFlags
		noHistory bool
	)

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write the selected cards to a new vCard file",
		Long: "Write the selected cards to a new vCard file.\n\n" +
			"Cards are written in their original file order with CRLF line endings.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out = strings.TrimSpace(out)
			if out == "" {
				return writeErr(cmd, errUsage("missing --out"))
			}
			if !sel.any() {
				return writeErr(cmd, errUsage("nothing to export: pass --select, --name or --all"))
			}
			st, err := loadCards(app, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := sel.apply(st); err != nil {
				return writeErr(cmd, err)
			}

			res, err := export.WriteFile(out, st.Records(), st.Selection())
			if err != nil {
				return writeErr(cmd, err)
			}
			app.logger().Info("export written", "source", st.Source(), "dest", out, "count", res.Count)

			if !noHistory {
				recordHistory(app, st, out, res.Count)
			}
			return writeOut(cmd, app, exportOut{Exported: res.Count, IDs: sortedCopy(res.IDs), Path: out}, nil)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Destination file")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record this export in the history")
	sel.bind(cmd)
	return cmd
}

// recordHistory is best effort: a failing history never fails an export.
func recordHistory(app *App, st *store.Store, dest string, count int) {
	h, err := store.OpenHistory()
	if err != nil {
		app.logger().Warn("export history unavailable", "err", err)
		return
	}
	total, _ := st.Counts()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := h.Record(ctx, store.ExportEntry{Source: st.Source(), Dest: dest, Count: count, Total: total}); err != nil {
		app.logger().Warn("export history write failed", "err", err)
	}
}
