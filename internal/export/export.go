// Package export builds the output file for the selected cards.
package export

import (
	"errors"
	"sort"
	"strings"

	"cardpick/internal/model"
	"cardpick/internal/store"
)

// ErrNothingSelected is returned when no record is selected. Nothing is written.
var ErrNothingSelected = errors.New("no contacts selected for export")

// Selector reports whether an identity is selected.
type Selector interface {
	IsSelected(id int) bool
}

// Result is the export body plus what went into it.
type Result struct {
	Text  string `json:"-"`
	Count int    `json:"exported"`
	IDs   []int  `json:"ids"`
}

// Build joins the raw text of the selected records in ascending identity
// order, one newline between records and one at the end, with CRLF line
// terminators throughout.
//
// The current display order plays no part here.
func Build(records []model.Record, sel Selector) (Result, error) {
	var picked []model.Record
	if sel != nil {
		for _, r := range records {
			if sel.IsSelected(r.ID) {
				picked = append(picked, r)
			}
		}
	}
	if len(picked) == 0 {
		return Result{}, ErrNothingSelected
	}
	sort.SliceStable(picked, func(i, j int) bool { return picked[i].ID < picked[j].ID })

	raws := make([]string, len(picked))
	ids := make([]int, len(picked))
	for i, r := range picked {
		raws[i] = r.Raw
		ids[i] = r.ID
	}
	body := strings.Join(raws, "\n") + "\n"
	return Result{Text: toCRLF(body), Count: len(picked), IDs: ids}, nil
}

// WriteFile builds the export and writes it atomically to path.
func WriteFile(path string, records []model.Record, sel Selector) (Result, error) {
	res, err := Build(records, sel)
	if err != nil {
		return res, err
	}
	if err := store.WriteFileAtomic(path, []byte(res.Text), 0o644); err != nil {
		return Result{}, err
	}
	return res, nil
}

func toCRLF(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "\r\n")
}
