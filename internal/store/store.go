package store

import (
	"cardpick/internal/model"
	"cardpick/internal/vcard"
)

// Store holds the records of the currently loaded file together with their
// selection state. Records are only ever replaced as a whole.
//
// Store is not safe for concurrent use; it is driven by a single control loop.
type Store struct {
	records []model.Record
	sel     Selection
	source  string
}

func New() *Store {
	return &Store{sel: Selection{}}
}

// Load parses text, installs the resulting records and clears the selection.
// Text without any well-formed card yields an empty store.
func (s *Store) Load(text string) int {
	recs := vcard.Parse(text)
	s.records = recs
	s.selection().Clear()
	s.source = ""
	return len(recs)
}

// LoadFile reads path and loads it. If the file can't be read, the store keeps
// its previous records and selection.
func (s *Store) LoadFile(path string) (int, error) {
	text, err := ReadSource(path)
	if err != nil {
		return 0, err
	}
	n := s.Load(text)
	s.source = path
	return n, nil
}

// Source is the path of the last file loaded with LoadFile.
func (s *Store) Source() string { return s.source }

// Records returns the records in load order.
func (s *Store) Records() []model.Record {
	out := make([]model.Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) Record(id int) (model.Record, bool) {
	if id < 0 || id >= len(s.records) {
		return model.Record{}, false
	}
	return s.records[id], true
}

func (s *Store) Len() int { return len(s.records) }

// Selection exposes the selection state of the loaded records.
func (s *Store) Selection() Selection { return s.selection() }

func (s *Store) selection() Selection {
	if s.sel == nil {
		s.sel = Selection{}
	}
	return s.sel
}

// IDs returns every identity currently loaded, ascending.
func (s *Store) IDs() []int {
	ids := make([]int, len(s.records))
	for i, r := range s.records {
		ids[i] = r.ID
	}
	return ids
}

func (s *Store) SelectAll()   { s.selection().SetAll(s.IDs(), true) }
func (s *Store) UnselectAll() { s.selection().SetAll(s.IDs(), false) }

// Counts returns the number of loaded records and the number selected.
func (s *Store) Counts() (total, selected int) {
	return len(s.records), s.sel.CountSelected()
}
