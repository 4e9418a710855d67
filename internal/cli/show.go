package cli

import (
	"strconv"
	"strings"

	"cardpick/internal/model"

	"github.com/spf13/cobra"
)

type shownRecord model.Record

// Rows prints the raw card, one line per row.
func (r shownRecord) Rows() [][]string {
	lines := strings.Split(r.Raw, "\n")
	out := make([][]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, []string{l})
	}
	return out
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <file> <id>",
		Short: "Show one card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(strings.TrimSpace(args[1]))
			if err != nil {
				return writeErr(cmd, errUsage("invalid id %q: expected a number", args[1]))
			}
			st, err := loadCards(app, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			r, ok := st.Record(id)
			if !ok {
				return writeErr(cmd, errNotFound("contact", args[1]))
			}
			return writeOut(cmd, app, shownRecord(r), nil)
		},
	}
}
