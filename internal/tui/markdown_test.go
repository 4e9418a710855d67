package tui

import (
	"strings"
	"testing"

	"cardpick/internal/model"
)

func TestMarkdownStyle_EnvOverride(t *testing.T) {
	for _, v := range []string{"light", "dark", "notty"} {
		t.Setenv("CARDPICK_TUI_MD_STYLE", v)
		if got := markdownStyle(); got != v {
			t.Fatalf("expected %q; got %q", v, got)
		}
	}

	t.Setenv("CARDPICK_TUI_MD_STYLE", "bogus")
	if got := markdownStyle(); got != "light" && got != "dark" {
		t.Fatalf("expected fallback to light or dark; got %q", got)
	}
}

func TestPreviewMarkdown_IncludesRawCard(t *testing.T) {
	rec := model.Record{ID: 4, Name: "Alice", Raw: "BEGIN:VCARD\nFN:Alice\nTEL:123\nEND:VCARD"}

	md := previewMarkdown(rec, true)
	if !strings.HasPrefix(md, "## Alice\n") {
		t.Fatalf("expected heading; got %q", md)
	}
	if !strings.Contains(md, "```\n"+rec.Raw+"\n```") {
		t.Fatalf("expected raw card in a fenced block; got %q", md)
	}
	if !strings.Contains(md, "selected") {
		t.Fatalf("expected selected marker; got %q", md)
	}
	if strings.Contains(previewMarkdown(rec, false), "selected") {
		t.Fatalf("did not expect selected marker for an unselected card")
	}
}

func TestRenderMarkdown_KeepsPropertyLines(t *testing.T) {
	t.Setenv("CARDPICK_TUI_MD_STYLE", "notty")

	rec := model.Record{ID: 0, Name: "Bob", Raw: "BEGIN:VCARD\nFN:Bob\nEMAIL:bob@example.com\nEND:VCARD"}
	out := renderMarkdown(previewMarkdown(rec, false), 60)
	if !strings.Contains(out, "EMAIL:bob@example.com") {
		t.Fatalf("expected rendered preview to keep property line; got %q", out)
	}
	if renderMarkdown("   ", 60) != "" {
		t.Fatalf("expected blank markdown to render empty")
	}
}
