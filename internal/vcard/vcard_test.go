package vcard

import (
	"reflect"
	"testing"

	"cardpick/internal/model"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "empty",
			in:   "",
			want: nil,
		},
		{
			name: "no markers",
			in:   "hello\nworld\n",
			want: nil,
		},
		{
			name: "single card",
			in:   "BEGIN:VCARD\nVERSION:3.0\nFN:Bob\nEND:VCARD\n",
			want: []string{"BEGIN:VCARD\nVERSION:3.0\nFN:Bob\nEND:VCARD"},
		},
		{
			name: "empty card",
			in:   "BEGIN:VCARD\nEND:VCARD",
			want: []string{"BEGIN:VCARD\nEND:VCARD"},
		},
		{
			name: "crlf input is normalized",
			in:   "BEGIN:VCARD\r\nFN:Bob\r\nEND:VCARD\r\nBEGIN:VCARD\r\nFN:Ann\r\nEND:VCARD\r\n",
			want: []string{
				"BEGIN:VCARD\nFN:Bob\nEND:VCARD",
				"BEGIN:VCARD\nFN:Ann\nEND:VCARD",
			},
		},
		{
			name: "malformed segment dropped",
			in:   "BEGIN:VCARD\nFN:Broken\nBEGIN:VCARD\nFN:Ok\nEND:VCARD\n",
			want: []string{"BEGIN:VCARD\nFN:Ok\nEND:VCARD"},
		},
		{
			name: "trailing malformed segment dropped",
			in:   "BEGIN:VCARD\nFN:Ok\nEND:VCARD\nBEGIN:VCARD\nFN:Broken",
			want: []string{"BEGIN:VCARD\nFN:Ok\nEND:VCARD"},
		},
		{
			name: "text after end marker ignored",
			in:   "junk\nBEGIN:VCARD\nFN:A\nEND:VCARD\nstray line\n",
			want: []string{"BEGIN:VCARD\nFN:A\nEND:VCARD"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Split(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Split:\n got: %#v\nwant: %#v", got, tt.want)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
	}{
		{"BEGIN:VCARD\nFN:Bob\nEND:VCARD", "Bob"},
		{"BEGIN:VCARD\nFN:  padded name  \nEND:VCARD", "padded name"},
		{"BEGIN:VCARD\nFN:First\nFN:Second\nEND:VCARD", "First"},
		{"BEGIN:VCARD\nN:Doe;John\nEND:VCARD", model.UnnamedContact},
		{"BEGIN:VCARD\n FN:indented\nEND:VCARD", model.UnnamedContact},
		{"BEGIN:VCARD\nfn:lower\nEND:VCARD", model.UnnamedContact},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.raw); got != tt.want {
			t.Fatalf("DisplayName(%q)=%q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestParse_AssignsDenseIdentities(t *testing.T) {
	t.Parallel()

	src := "BEGIN:VCARD\nFN:Bob\nEND:VCARD\n" +
		"BEGIN:VCARD\nFN:Broken\n" +
		"BEGIN:VCARD\nFN:alice\nEND:VCARD\n" +
		"BEGIN:VCARD\nEND:VCARD\n"

	got := Parse(src)
	want := []model.Record{
		{ID: 0, Name: "Bob", Raw: "BEGIN:VCARD\nFN:Bob\nEND:VCARD"},
		{ID: 1, Name: "alice", Raw: "BEGIN:VCARD\nFN:alice\nEND:VCARD"},
		{ID: 2, Name: model.UnnamedContact, Raw: "BEGIN:VCARD\nEND:VCARD"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse:\n got: %#v\nwant: %#v", got, want)
	}
}

func TestParse_NoRecords(t *testing.T) {
	t.Parallel()

	if got := Parse("nothing here"); len(got) != 0 {
		t.Fatalf("expected no records; got %#v", got)
	}
}
