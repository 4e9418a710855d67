package store

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const threeCards = "BEGIN:VCARD\nFN:Bob\nEND:VCARD\n" +
	"BEGIN:VCARD\nFN:alice\nEND:VCARD\n" +
	"BEGIN:VCARD\nEND:VCARD\n"

func TestStore_LoadAssignsIdentitiesInFileOrder(t *testing.T) {
	t.Parallel()

	s := New()
	if n := s.Load(threeCards); n != 3 {
		t.Fatalf("Load: expected 3 records, got %d", n)
	}
	recs := s.Records()
	for i, r := range recs {
		if r.ID != i {
			t.Fatalf("record %d has identity %d", i, r.ID)
		}
	}
	names := []string{recs[0].Name, recs[1].Name, recs[2].Name}
	if !reflect.DeepEqual(names, []string{"Bob", "alice", "Unnamed Contact"}) {
		t.Fatalf("unexpected names: %#v", names)
	}
}

func TestStore_RecordsReturnsCopy(t *testing.T) {
	t.Parallel()

	s := New()
	s.Load(threeCards)
	recs := s.Records()
	recs[0].Name = "mutated"
	if r, _ := s.Record(0); r.Name != "Bob" {
		t.Fatalf("store mutated through Records(): %q", r.Name)
	}
}

func TestStore_LoadClearsSelection(t *testing.T) {
	t.Parallel()

	s := New()
	s.Load(threeCards)
	s.Selection().Set(1, true)
	s.Selection().Set(2, false)

	s.Load(threeCards)
	if got := s.Selection().CountSelected(); got != 0 {
		t.Fatalf("expected cleared selection after reload, got %d selected", got)
	}
	if len(s.Selection()) != 0 {
		t.Fatalf("expected no selection entries after reload, got %#v", s.Selection())
	}
}

func TestStore_LoadEmptyIsNotAnError(t *testing.T) {
	t.Parallel()

	s := New()
	s.Load(threeCards)
	s.SelectAll()
	if n := s.Load("no cards here"); n != 0 {
		t.Fatalf("expected 0 records, got %d", n)
	}
	total, selected := s.Counts()
	if total != 0 || selected != 0 {
		t.Fatalf("expected zero counts, got total=%d selected=%d", total, selected)
	}
}

func TestStore_SelectAllUnselectAll(t *testing.T) {
	t.Parallel()

	s := New()
	s.Load(threeCards)

	s.SelectAll()
	if total, selected := s.Counts(); selected != total || total != 3 {
		t.Fatalf("after SelectAll: total=%d selected=%d", total, selected)
	}
	s.UnselectAll()
	if _, selected := s.Counts(); selected != 0 {
		t.Fatalf("after UnselectAll: selected=%d", selected)
	}
	// Unselect-all keeps explicit false entries rather than pruning.
	if len(s.Selection()) != 3 {
		t.Fatalf("expected 3 selection entries, got %d", len(s.Selection()))
	}
}

func TestStore_ZeroValueIsUsable(t *testing.T) {
	t.Parallel()

	var s Store
	s.Load(threeCards)
	s.Selection().Set(0, true)
	if total, selected := s.Counts(); total != 3 || selected != 1 {
		t.Fatalf("total=%d selected=%d", total, selected)
	}
}

func TestStore_LoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "contacts.vcf")
	if err := os.WriteFile(path, []byte(threeCards), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	s := New()
	n, err := s.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if n != 3 || s.Source() != path {
		t.Fatalf("n=%d source=%q", n, s.Source())
	}
}

func TestStore_LoadFileFailureKeepsPreviousState(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := New()
	s.Load(threeCards)
	s.Selection().Set(1, true)

	if _, err := s.LoadFile(filepath.Join(dir, "missing.vcf")); err == nil {
		t.Fatalf("expected error for missing file")
	} else if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}

	bad := filepath.Join(dir, "bad.vcf")
	if err := os.WriteFile(bad, []byte{'B', 0xff, 0xfe, '\n'}, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := s.LoadFile(bad); !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}

	if total, selected := s.Counts(); total != 3 || selected != 1 {
		t.Fatalf("state changed after failed loads: total=%d selected=%d", total, selected)
	}
	if !s.Selection().IsSelected(1) {
		t.Fatalf("expected identity 1 to stay selected")
	}
}
