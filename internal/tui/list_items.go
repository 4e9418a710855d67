package tui

import (
	"strconv"

	"cardpick/internal/model"
)

// cardItem is one row of the contact list. The identity travels with the row
// so key handlers act on the card under the cursor, whatever the display order.
type cardItem struct {
	rec      model.Record
	selected bool
}

func (i cardItem) FilterValue() string { return i.rec.Name }
func (i cardItem) Title() string       { return i.rec.Name }
func (i cardItem) Description() string { return "#" + strconv.Itoa(i.rec.ID) }
