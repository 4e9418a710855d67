package tui

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
)

func TestNormalizePane_PadsAndTruncates(t *testing.T) {
	out := normalizePane("short\na much longer line than fits", 10, 4)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines; got %d", len(lines))
	}
	for i, ln := range lines {
		if w := xansi.StringWidth(ln); w != 10 {
			t.Fatalf("line %d: expected width 10; got %d (%q)", i, w, ln)
		}
	}
	if !strings.HasSuffix(lines[1], "…") {
		t.Fatalf("expected ellipsis on truncated line; got %q", lines[1])
	}
}

func TestNormalizePane_ClipsHeight(t *testing.T) {
	out := normalizePane("a\nb\nc\nd", 1, 2)
	if out != "a\nb" {
		t.Fatalf("expected clipped pane; got %q", out)
	}
}
