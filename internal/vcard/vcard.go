// Package vcard splits concatenated vCard text into canonical card records.
//
// Only the FN property is interpreted. Everything else between the markers is
// carried verbatim.
package vcard

import (
	"strings"

	"cardpick/internal/model"
)

const (
	BeginMarker = "BEGIN:VCARD"
	EndMarker   = "END:VCARD"
	// NameTag prefixes the property line holding the display name.
	NameTag = "FN:"
)

// Split returns the canonical text of every well-formed card in src, in file order.
//
// A segment is the text between one begin marker and the next. Segments without
// an end marker are dropped.
func Split(src string) []string {
	src = normalizeNewlines(src)
	segs := strings.Split(src, BeginMarker)
	if len(segs) < 2 {
		return nil
	}
	out := make([]string, 0, len(segs)-1)
	for _, seg := range segs[1:] {
		seg = strings.TrimSpace(seg)
		body, _, ok := strings.Cut(seg, EndMarker)
		if !ok {
			continue
		}
		out = append(out, BeginMarker+"\n"+body+EndMarker)
	}
	return out
}

// DisplayName returns the trimmed value of the first FN: line in raw.
func DisplayName(raw string) string {
	for _, line := range strings.Split(raw, "\n") {
		if v, ok := strings.CutPrefix(line, NameTag); ok {
			return strings.TrimSpace(v)
		}
	}
	return model.UnnamedContact
}

// Parse splits src and assigns identities in emitted order.
func Parse(src string) []model.Record {
	raws := Split(src)
	recs := make([]model.Record, 0, len(raws))
	for i, raw := range raws {
		recs = append(recs, model.Record{ID: i, Name: DisplayName(raw), Raw: raw})
	}
	return recs
}

// normalizeNewlines rewrites CRLF and lone CR line endings to LF.
func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
