// Package view derives the display order of loaded cards.
//
// Project is a pure function of its inputs. It never reorders or filters the
// slice it is given; callers recompute the projection after every change to the
// records, the selection or the flags.
package view

import (
	"sort"

	"cardpick/internal/model"

	"golang.org/x/text/cases"
)

// Flags are the user-facing view toggles.
type Flags struct {
	SortByName       bool `json:"sortByName"`
	ShowSelectedOnly bool `json:"showSelectedOnly"`
}

func DefaultFlags() Flags {
	return Flags{SortByName: true}
}

// Selector reports whether an identity is selected.
type Selector interface {
	IsSelected(id int) bool
}

// Project returns the records to display, in display order.
func Project(records []model.Record, sel Selector, flags Flags) []model.Record {
	out := make([]model.Record, len(records))
	copy(out, records)

	if flags.SortByName {
		sortByName(out)
	} else {
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	}

	if flags.ShowSelectedOnly {
		kept := out[:0]
		for _, r := range out {
			if sel != nil && sel.IsSelected(r.ID) {
				kept = append(kept, r)
			}
		}
		out = kept
	}
	return out
}

// sortByName orders by case-folded name, then ascending identity.
func sortByName(recs []model.Record) {
	fold := cases.Fold()
	keys := make(map[int]string, len(recs))
	for _, r := range recs {
		keys[r.ID] = fold.String(r.Name)
	}
	sort.SliceStable(recs, func(i, j int) bool {
		a, b := keys[recs[i].ID], keys[recs[j].ID]
		if a != b {
			return a < b
		}
		return recs[i].ID < recs[j].ID
	})
}

// IndexOf returns the position of id in a projection, or -1.
func IndexOf(projected []model.Record, id int) int {
	for i, r := range projected {
		if r.ID == id {
			return i
		}
	}
	return -1
}
