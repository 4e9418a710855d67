package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cardpick/internal/export"
	"cardpick/internal/model"
	"cardpick/internal/store"
	"cardpick/internal/view"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type modalKind int

const (
	modalNone modalKind = iota
	modalOpen
	modalExport
)

const msgNothingSelected = "No contacts selected for export."

type appModel struct {
	store   *store.Store
	flags   view.Flags
	cfg     *store.GlobalConfig
	history store.History
	log     *slog.Logger

	width  int
	height int

	list list.Model
	keys keyMap
	help help.Model

	modal modalKind
	input textinput.Model

	showPreview bool

	minibufferText string
	minibufferWarn bool
}

func newAppModel(opts Options) appModel {
	st := opts.Store
	if st == nil {
		st = store.New()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = &store.GlobalConfig{}
	}
	lg := opts.Log
	if lg == nil {
		lg = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	m := appModel{
		store:   st,
		flags:   view.Flags{SortByName: cfg.SortByNameDefault()},
		cfg:     cfg,
		history: opts.History,
		log:     lg,
		width:   80,
		height:  24,
		keys:    newKeyMap(),
		help:    help.New(),
	}
	if cfg.TUI != nil {
		m.showPreview = cfg.TUI.Preview
	}

	m.list = newCardList()
	m.input = textinput.New()
	m.input.Prompt = ""
	m.input.CharLimit = 4096

	m.resize()
	m.refresh()
	return m
}

func newCardList() list.Model {
	l := list.New([]list.Item{}, newCheckboxDelegate(), 0, 0)
	l.Title = "Contacts"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.SetStatusBarItemName("contact", "contacts")
	return l
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if m.modal != modalNone {
			return m.updateModal(msg)
		}
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	if m.modal != modalNone {
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.clearMinibuffer()

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.toggle):
		if id, ok := m.currentID(); ok {
			m.toggle(id)
		}
		return m, nil
	case key.Matches(msg, m.keys.selectAll):
		m.store.SelectAll()
		m.refresh()
		return m, nil
	case key.Matches(msg, m.keys.unselectAll):
		m.store.UnselectAll()
		m.refresh()
		return m, nil
	case key.Matches(msg, m.keys.sort):
		m.flags.SortByName = !m.flags.SortByName
		m.refresh()
		return m, nil
	case key.Matches(msg, m.keys.onlySel):
		m.flags.ShowSelectedOnly = !m.flags.ShowSelectedOnly
		m.refresh()
		return m, nil
	case key.Matches(msg, m.keys.preview):
		m.showPreview = !m.showPreview
		m.resize()
		return m, nil
	case key.Matches(msg, m.keys.copy):
		m.copyCurrent()
		return m, nil
	case key.Matches(msg, m.keys.open):
		return m, m.openPrompt()
	case key.Matches(msg, m.keys.export):
		return m, m.exportPrompt()
	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.closeModal()
		return m, nil
	case "enter":
		kind := m.modal
		path := expandHome(strings.TrimSpace(m.input.Value()))
		m.closeModal()
		if path == "" {
			m.warn("No file chosen.")
			return m, nil
		}
		switch kind {
		case modalOpen:
			m.openFile(path)
		case modalExport:
			m.exportTo(path)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// currentID is the identity of the row under the cursor.
func (m appModel) currentID() (int, bool) {
	it, ok := m.list.SelectedItem().(cardItem)
	if !ok {
		return 0, false
	}
	return it.rec.ID, true
}

func (m *appModel) toggle(id int) {
	v := m.store.Selection().Toggle(id)
	m.log.Debug("toggle", "id", id, "selected", v)
	m.refresh()
}

// refresh recomputes the projection and keeps the cursor on the same card when
// it is still visible.
func (m *appModel) refresh() {
	curID, hasCur := m.currentID()
	curIdx := m.list.Index()

	sel := m.store.Selection()
	projected := view.Project(m.store.Records(), sel, m.flags)
	items := make([]list.Item, 0, len(projected))
	for _, r := range projected {
		items = append(items, cardItem{rec: r, selected: sel.IsSelected(r.ID)})
	}
	_ = m.list.SetItems(items)

	if hasCur {
		if i := view.IndexOf(projected, curID); i >= 0 {
			m.list.Select(i)
			return
		}
	}
	if curIdx >= len(items) {
		curIdx = len(items) - 1
	}
	if curIdx < 0 {
		curIdx = 0
	}
	m.list.Select(curIdx)
}

func (m *appModel) openPrompt() tea.Cmd {
	def := m.store.Source()
	if def == "" && strings.TrimSpace(m.cfg.LastDir) != "" {
		def = strings.TrimRight(m.cfg.LastDir, string(filepath.Separator)) + string(filepath.Separator)
	}
	return m.openModal(modalOpen, def)
}

func (m *appModel) exportPrompt() tea.Cmd {
	if _, selected := m.store.Counts(); selected == 0 {
		m.warn(msgNothingSelected)
		return nil
	}
	def := "selected.vcf"
	if src := m.store.Source(); src != "" {
		def = filepath.Join(filepath.Dir(src), def)
	}
	return m.openModal(modalExport, def)
}

func (m *appModel) openModal(kind modalKind, value string) tea.Cmd {
	m.modal = kind
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *appModel) closeModal() {
	m.modal = modalNone
	m.input.Blur()
	m.input.SetValue("")
}

func (m *appModel) openFile(path string) {
	n, err := m.store.LoadFile(path)
	if err != nil {
		m.log.Warn("open failed", "path", path, "err", err)
		m.warn(fmt.Sprintf("Could not open %s: %v", path, err))
		return
	}
	m.log.Info("cards loaded", "path", path, "count", n)
	m.refresh()
	m.list.ResetSelected()

	if n == 0 {
		m.info(fmt.Sprintf("No contacts found in %s", path))
	} else {
		m.info(fmt.Sprintf("Loaded %d contacts from %s", n, path))
	}

	if abs, err := filepath.Abs(path); err == nil {
		m.cfg.LastDir = filepath.Dir(abs)
		if err := store.SaveConfig(m.cfg); err != nil {
			m.log.Warn("config save failed", "err", err)
		}
	}
}

func (m *appModel) exportTo(path string) {
	res, err := export.WriteFile(path, m.store.Records(), m.store.Selection())
	switch {
	case errors.Is(err, export.ErrNothingSelected):
		m.warn(msgNothingSelected)
		return
	case err != nil:
		m.log.Warn("export failed", "dest", path, "err", err)
		m.warn(fmt.Sprintf("Export failed: %v", err))
		return
	}
	m.log.Info("export written", "source", m.store.Source(), "dest", path, "count", res.Count)
	m.info(fmt.Sprintf("Exported %d contacts to %s", res.Count, path))

	total, _ := m.store.Counts()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := m.history.Record(ctx, store.ExportEntry{Source: m.store.Source(), Dest: path, Count: res.Count, Total: total}); err != nil {
		m.log.Warn("export history write failed", "err", err)
	}
}

func (m *appModel) copyCurrent() {
	rec, ok := m.currentRecord()
	if !ok {
		return
	}
	if err := copyToClipboard(rec.Raw); err != nil {
		m.warn(fmt.Sprintf("Copy failed: %v", err))
		return
	}
	m.info(fmt.Sprintf("Copied %s to clipboard", rec.Name))
}

func (m appModel) currentRecord() (model.Record, bool) {
	id, ok := m.currentID()
	if !ok {
		return model.Record{}, false
	}
	return m.store.Record(id)
}

func (m *appModel) info(s string) {
	m.minibufferText = s
	m.minibufferWarn = false
}

func (m *appModel) warn(s string) {
	m.minibufferText = s
	m.minibufferWarn = true
}

func (m *appModel) clearMinibuffer() {
	m.minibufferText = ""
	m.minibufferWarn = false
}

func (m appModel) helpHeight() int {
	if m.help.ShowAll {
		return 3
	}
	return 1
}

// bodySize returns the list/preview area. Header, minibuffer, status and help
// take the remaining lines.
func (m appModel) bodySize() (w, h int) {
	w = m.width
	if w < 40 {
		w = 40
	}
	h = m.height - 4 - m.helpHeight()
	if h < 5 {
		h = 5
	}
	return w, h
}

func (m appModel) listWidth() int {
	w, _ := m.bodySize()
	if m.showPreview {
		return w / 2
	}
	return w
}

func (m *appModel) resize() {
	w, h := m.bodySize()
	m.list.SetSize(m.listWidth(), h)
	m.help.Width = w
	m.input.Width = w - 20
}

func (m appModel) View() string {
	w, h := m.bodySize()

	src := m.store.Source()
	if src == "" {
		src = "no file loaded (o to open)"
	}
	header := styleHeader.Render("cardpick") + "  " + styleMuted.Render(src)

	body := m.list.View()
	if m.showPreview {
		leftW := m.listWidth()
		rightW := w - leftW - 2
		left := normalizePane(body, leftW, h)
		right := normalizePane(m.previewView(rightW), rightW, h)
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	} else {
		body = normalizePane(body, w, h)
	}

	var mini string
	switch m.modal {
	case modalOpen:
		mini = renderInputLine(w, "Open:", m.input.View())
	case modalExport:
		mini = renderInputLine(w, "Export to:", m.input.View())
	default:
		if m.minibufferWarn {
			mini = styleWarn.Render(m.minibufferText)
		} else {
			mini = m.minibufferText
		}
	}

	return strings.Join([]string{header, body, mini, m.statusLine(), m.help.View(m.keys)}, "\n")
}

func (m appModel) statusLine() string {
	total, selected := m.store.Counts()
	order := "file order"
	if m.flags.SortByName {
		order = "by name"
	}
	shown := "all"
	if m.flags.ShowSelectedOnly {
		shown = "selected only"
	}
	return styleCounter.Render(fmt.Sprintf("Total: %d | Selected: %d", total, selected)) +
		styleMuted.Render(fmt.Sprintf("   sort: %s   showing: %s", order, shown))
}

func (m appModel) previewView(width int) string {
	rec, ok := m.currentRecord()
	if !ok {
		return styleMuted.Render("No contact under the cursor.")
	}
	return renderMarkdown(previewMarkdown(rec, m.store.Selection().IsSelected(rec.ID)), width)
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
