package tui

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"cardpick/internal/model"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	mdRendererMu sync.Mutex
	// Cache renderers by wrap width + style. WithAutoStyle can trigger terminal
	// background queries that block on some terminals, so a fixed style is used.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	style := markdownStyle()
	key := style + ":" + strconv.Itoa(width)

	mdRendererMu.Lock()
	r := mdRenderers[key]
	mdRendererMu.Unlock()

	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRendererMu.Lock()
		if existing := mdRenderers[key]; existing != nil {
			r = existing
		} else {
			mdRenderers[key] = rr
			r = rr
		}
		mdRendererMu.Unlock()
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func markdownStyle() string {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("CARDPICK_TUI_MD_STYLE"))) {
	case "light":
		return "light"
	case "dark":
		return "dark"
	case "notty":
		return "notty"
	}
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

// previewMarkdown presents a card as a heading plus its raw text in a fenced
// block, so property lines are shown verbatim.
func previewMarkdown(rec model.Record, selected bool) string {
	var b strings.Builder
	b.WriteString("## ")
	b.WriteString(rec.Name)
	b.WriteString("\n\n")
	b.WriteString("id `")
	b.WriteString(strconv.Itoa(rec.ID))
	b.WriteString("`")
	if selected {
		b.WriteString(" · **selected**")
	}
	b.WriteString("\n\n```\n")
	b.WriteString(rec.Raw)
	b.WriteString("\n```\n")
	return b.String()
}
