package store

import "sort"

// Selection maps record identity to its "selected" flag. A missing entry
// means not selected.
//
// Entries are never pruned one by one; Clear drops all of them when a new file
// is loaded.
type Selection map[int]bool

func (s Selection) Set(id int, v bool) { s[id] = v }

func (s Selection) SetAll(ids []int, v bool) {
	for _, id := range ids {
		s[id] = v
	}
}

// Toggle flips the flag for id and returns the new value.
func (s Selection) Toggle(id int) bool {
	v := !s[id]
	s[id] = v
	return v
}

func (s Selection) IsSelected(id int) bool { return s[id] }

func (s Selection) CountSelected() int {
	n := 0
	for _, v := range s {
		if v {
			n++
		}
	}
	return n
}

// Selected returns the identities mapped to true, ascending.
func (s Selection) Selected() []int {
	out := make([]int, 0, len(s))
	for id, v := range s {
		if v {
			out = append(out, id)
		}
	}
	sort.Ints(out)
	return out
}

func (s Selection) Clear() {
	for id := range s {
		delete(s, id)
	}
}
