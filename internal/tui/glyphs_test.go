package tui

import "testing"

func TestGlyphs_FromEnv(t *testing.T) {
	t.Setenv("CARDPICK_TUI_GLYPHS", "")
	setGlyphs(glyphSetASCII)
	applyGlyphPreference("")
	if got := glyphs(); got != glyphSetUnicode {
		t.Fatalf("expected unicode glyphs by default; got %v", got)
	}

	t.Setenv("CARDPICK_TUI_GLYPHS", "ascii")
	applyGlyphPreference("")
	if got := glyphs(); got != glyphSetASCII {
		t.Fatalf("expected ascii glyphs; got %v", got)
	}

	// Unknown values are ignored.
	t.Setenv("CARDPICK_TUI_GLYPHS", "bogus")
	applyGlyphPreference("")
	if got := glyphs(); got != glyphSetASCII {
		t.Fatalf("expected unknown to be ignored; got %v", got)
	}
	setGlyphs(glyphSetUnicode)
}

func TestGlyphs_EnvOverridesConfig(t *testing.T) {
	t.Cleanup(func() { setGlyphs(glyphSetUnicode) })

	t.Setenv("CARDPICK_TUI_GLYPHS", "")
	applyGlyphPreference("ascii")
	if got := glyphs(); got != glyphSetASCII {
		t.Fatalf("expected config to select ascii; got %v", got)
	}

	t.Setenv("CARDPICK_TUI_GLYPHS", "unicode")
	applyGlyphPreference("ascii")
	if got := glyphs(); got != glyphSetUnicode {
		t.Fatalf("expected env to win over config; got %v", got)
	}
}

func TestGlyphCheckbox(t *testing.T) {
	t.Cleanup(func() { setGlyphs(glyphSetUnicode) })

	setGlyphs(glyphSetASCII)
	if got := glyphCheckbox(true); got != "[x]" {
		t.Fatalf("checked ascii: got %q", got)
	}
	if got := glyphCheckbox(false); got != "[ ]" {
		t.Fatalf("unchecked ascii: got %q", got)
	}

	setGlyphs(glyphSetUnicode)
	if glyphCheckbox(true) == glyphCheckbox(false) {
		t.Fatalf("expected distinct unicode checkboxes")
	}
}
