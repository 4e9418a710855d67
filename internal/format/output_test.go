package format

import (
	"bytes"
	"strings"
	"testing"
)

type rowsPayload [][]string

func (r rowsPayload) Rows() [][]string { return r }

func TestWrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		v      any
		format string
		pretty bool
		want   string
	}{
		{name: "json default", v: map[string]int{"a": 1}, format: "", want: "{\"a\":1}\n"},
		{name: "json pretty", v: map[string]int{"a": 1}, format: "json", pretty: true, want: "{\n  \"a\": 1\n}\n"},
		{name: "text fallback", v: "hello", format: "text", want: "hello\n"},
		{
			name:   "text rows aligned",
			v:      rowsPayload{{"0", "Bob"}, {"12", "alice"}},
			format: "text",
			want:   "0   Bob\n12  alice\n",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := Write(&buf, tt.v, tt.format, tt.pretty); err != nil {
				t.Fatalf("Write: %v", err)
			}
			if buf.String() != tt.want {
				t.Fatalf("got %q want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := Write(&bytes.Buffer{}, 1, "edn", false)
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("expected unknown format error, got %v", err)
	}
}
