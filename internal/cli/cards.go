package cli

import (
	"sort"
	"strconv"
	"strings"

	"cardpick/internal/model"
	"cardpick/internal/store"
	"cardpick/internal/view"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
)

// selectionFlags are shared by commands that select cards non-interactively.
type selectionFlags struct {
	ids   []int
	all   bool
	names []string
}

func (f *selectionFlags) bind(cmd *cobra.Command) {
	cmd.Flags().IntSliceVar(&f.ids, "select", nil, "Select cards by id (comma-separated or repeated)")
	cmd.Flags().BoolVar(&f.all, "all", false, "Select every card")
	cmd.Flags().StringSliceVar(&f.names, "name", nil, "Select cards whose name contains this text (case-insensitive; repeatable)")
}

func (f selectionFlags) any() bool {
	return f.all || len(f.ids) > 0 || len(f.names) > 0
}

// apply sets the selection on st. Unknown ids are reported rather than ignored.
func (f selectionFlags) apply(st *store.Store) error {
	if f.all {
		st.SelectAll()
	}
	for _, id := range f.ids {
		if _, ok := st.Record(id); !ok {
			return errNotFound("contact", strconv.Itoa(id))
		}
		st.Selection().Set(id, true)
	}
	fold := cases.Fold()
	for _, n := range f.names {
		n = fold.String(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		for _, r := range st.Records() {
			if strings.Contains(fold.String(r.Name), n) {
				st.Selection().Set(r.ID, true)
			}
		}
	}
	return nil
}

type cardRow struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

type cardRows []cardRow

func (rs cardRows) Rows() [][]string {
	out := make([][]string, 0, len(rs))
	for _, r := range rs {
		mark := "[ ]"
		if r.Selected {
			mark = "[x]"
		}
		out = append(out, []string{strconv.Itoa(r.ID), mark, r.Name})
	}
	return out
}

func rowsFor(recs []model.Record, sel view.Selector) cardRows {
	out := make(cardRows, 0, len(recs))
	for _, r := range recs {
		out = append(out, cardRow{ID: r.ID, Name: r.Name, Selected: sel.IsSelected(r.ID)})
	}
	return out
}

type countsMeta struct {
	Source   string     `json:"source"`
	Total    int        `json:"total"`
	Selected int        `json:"selected"`
	Flags    view.Flags `json:"flags"`
}

func sortedCopy(ids []int) []int {
	out := append([]int(nil), ids...)
	sort.Ints(out)
	return out
}
