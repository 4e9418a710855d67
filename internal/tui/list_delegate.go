package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

type checkboxDelegate struct {
	normal   lipgloss.Style
	checked  lipgloss.Style
	cursor   lipgloss.Style
	idSuffix lipgloss.Style
}

func newCheckboxDelegate() checkboxDelegate {
	return checkboxDelegate{
		normal:   lipgloss.NewStyle(),
		checked:  lipgloss.NewStyle().Foreground(colorChecked),
		cursor:   lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true),
		idSuffix: faintIfDark(lipgloss.NewStyle().Foreground(colorMuted)),
	}
}

func (d checkboxDelegate) Height() int  { return 1 }
func (d checkboxDelegate) Spacing() int { return 0 }
func (d checkboxDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d checkboxDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	it, ok := item.(cardItem)
	if !ok || contentW < 8 {
		fmt.Fprint(w, "")
		return
	}

	isCursor := index == m.Index()
	lead := " "
	if isCursor {
		lead = glyphCursor()
	}
	box := glyphCheckbox(it.selected)
	suffix := " " + it.Description()

	line := lead + " " + box + " " + it.Title()
	avail := contentW - xansi.StringWidth(suffix)
	if lineW := xansi.StringWidth(line); lineW > avail {
		line = xansi.Truncate(line, avail, "…")
	} else if lineW < avail {
		line += strings.Repeat(" ", avail-lineW)
	}

	switch {
	case isCursor:
		fmt.Fprint(w, d.cursor.Render(line+suffix))
	case it.selected:
		fmt.Fprint(w, d.checked.Render(line)+d.idSuffix.Render(suffix))
	default:
		fmt.Fprint(w, d.normal.Render(line)+d.idSuffix.Render(suffix))
	}
}
