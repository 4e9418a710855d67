package tui

import (
	"log/slog"
	"strings"

	"cardpick/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	// Path is loaded before the first frame when set.
	Path    string
	Config  *store.GlobalConfig
	History store.History
	Log     *slog.Logger
	// Store defaults to an empty store.
	Store *store.Store
}

func Run(opts Options) error {
	applyColorProfilePreference()
	glyphPref := ""
	if opts.Config != nil && opts.Config.TUI != nil {
		glyphPref = opts.Config.TUI.Glyphs
	}
	applyGlyphPreference(glyphPref)

	m := newAppModel(opts)
	if p := strings.TrimSpace(opts.Path); p != "" {
		m.openFile(p)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
