package cli

import (
	"cardpick/internal/view"

	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var (
		noSort       bool
		selectedOnly bool
		sel          selectionFlags
	)

	cmd := &cobra.Command{
		Use:   "list <file>",
		Short: "List the cards in a vCard file",
		Long: "List the cards in a vCard file in display order.\n\n" +
			"Cards are sorted by name unless --no-sort is given. Ids are the card's position\n" +
			"in the file and stay the same however the list is sorted or filtered.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadCards(app, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := sel.apply(st); err != nil {
				return writeErr(cmd, err)
			}
			flags := view.Flags{SortByName: !noSort, ShowSelectedOnly: selectedOnly}
			projected := view.Project(st.Records(), st.Selection(), flags)
			total, selected := st.Counts()
			return writeOut(cmd, app, rowsFor(projected, st.Selection()), countsMeta{
				Source:   st.Source(),
				Total:    total,
				Selected: selected,
				Flags:    flags,
			})
		},
	}

	cmd.Flags().BoolVar(&noSort, "no-sort", false, "Keep file order instead of sorting by name")
	cmd.Flags().BoolVar(&selectedOnly, "selected-only", false, "Only show selected cards")
	sel.bind(cmd)
	return cmd
}
